package main

import "bytes"
import "reflect"
import "testing"
import "io/ioutil"
import "path/filepath"

import "github.com/bnclabs/llrbset/llrb"

func TestParsescript(t *testing.T) {
	text := []byte(`
insert 0 1 2 3 4 5 6 7 8 9 150;
validate
contains 5; delete 5
contains 4 5 6
delete -10
validate;
`)
	stmts, err := parsescript(text)
	if err != nil {
		t.Fatal(err)
	}
	ref := []statement{
		{"insert", []int64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 150}},
		{"validate", nil},
		{"contains", []int64{5}},
		{"delete", []int64{5}},
		{"contains", []int64{4, 5, 6}},
		{"delete", []int64{-10}},
		{"validate", nil},
	}
	if !reflect.DeepEqual(stmts, ref) {
		t.Errorf("expected %v, got %v", ref, stmts)
	}

	if stmts, err := parsescript([]byte("  \n ")); err != nil {
		t.Error(err)
	} else if len(stmts) != 0 {
		t.Errorf("unexpected %v", stmts)
	}
}

func TestParsescriptErrors(t *testing.T) {
	testcases := []string{
		"insert",
		"insert x",
		"upsert 10",
		"contains 10 ;;",
		"delete 99999999999999999999",
	}
	for _, tcase := range testcases {
		if _, err := parsescript([]byte(tcase)); err == nil {
			t.Errorf("%q expected error", tcase)
		}
	}
}

func TestReplay(t *testing.T) {
	script := "insert 0 1 2 3 4 5 6 7 8 9 150\n" +
		"delete 5; contains 4 5 6\n" +
		"validate\n"
	file := filepath.Join(t.TempDir(), "ops.script")
	if err := ioutil.WriteFile(file, []byte(script), 0644); err != nil {
		t.Fatal(err)
	}
	text, err := readscript(file)
	if err != nil {
		t.Fatal(err)
	}
	stmts, err := parsescript(text)
	if err != nil {
		t.Fatal(err)
	}

	out := bytes.NewBuffer(nil)
	tree := llrb.NewLLRB("replay", llrb.Defaultsettings())
	if err := replay(tree, stmts, out); err != nil {
		t.Fatal(err)
	}
	ref := "contains 4 true\ncontains 5 false\ncontains 6 true\n" +
		"validate ok, 10 keys\n"
	if x := out.String(); x != ref {
		t.Errorf("expected %q, got %q", ref, x)
	}
}

func TestLoadkeys(t *testing.T) {
	if keys := loadkeys(4, "asc", 0); !reflect.DeepEqual(keys, []int64{0, 1, 2, 3}) {
		t.Errorf("unexpected %v", keys)
	}
	if keys := loadkeys(4, "desc", 0); !reflect.DeepEqual(keys, []int64{3, 2, 1, 0}) {
		t.Errorf("unexpected %v", keys)
	}
	keys := loadkeys(100, "random", 10)
	seen := map[int64]bool{}
	for _, key := range keys {
		seen[key] = true
	}
	if len(seen) != 100 {
		t.Errorf("unexpected %v", len(seen))
	}
}

func TestChecker(t *testing.T) {
	c := newchecker(llrb.NewLLRB("checker", llrb.Defaultsettings()))
	for key := int64(0); key < 100; key++ {
		if err := c.apply("insert", key); err != nil {
			t.Fatal(err)
		}
	}
	for key := int64(0); key < 100; key += 3 {
		if err := c.apply("delete", key); err != nil {
			t.Fatal(err)
		}
	}
	for key := int64(-5); key < 105; key++ {
		if err := c.apply("contains", key); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.validate(); err != nil {
		t.Error(err)
	}
	if err := c.apply("upsert", 1); err == nil {
		t.Errorf("expected error")
	}
	if c.opcounts["insert"] != 100 {
		t.Errorf("unexpected %v", c.opcounts)
	}
}
