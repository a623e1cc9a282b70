package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) Add() error   { f.calls = append(f.calls, "add"); return nil }
func (f *fakeExec) List() error  { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Stats() error { f.calls = append(f.calls, "stats"); return nil }

func (f *fakeExec) Search(keyword string) error {
	f.calls = append(f.calls, "search:"+keyword)
	return nil
}

func (f *fakeExec) Edit(arg string) error {
	f.calls = append(f.calls, "edit:"+arg)
	return nil
}

func (f *fakeExec) Delete(arg string) error {
	f.calls = append(f.calls, "delete:"+arg)
	return nil
}

func TestRunREPLDispatch(t *testing.T) {
	input := "help\n\nadd\nl\nlist\nsearch rainy day\nstats\nedit 2\ndelete 1\nfoobar\nexit\nstats\n"
	exec := &fakeExec{}
	var out bytes.Buffer

	runREPL(exec, rdr(input), &out)

	assert.Equal(t, []string{"add", "list", "list", "search:rainy day", "stats", "edit:2", "delete:1"}, exec.calls)
	assert.Contains(t, out.String(), helpText)
	assert.Contains(t, out.String(), "Unknown command: foobar")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunREPLSearchKeepsInnerSpacing(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	runREPL(exec, rdr("  search   two  spaces\r\nsearch\ttabbed\n"), &out)

	assert.Equal(t, []string{"search:two  spaces", "search:tabbed"}, exec.calls)
}

func TestRunREPLUsage(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	runREPL(exec, rdr("search\nedit\ndelete 1 2\n"), &out)

	assert.Empty(t, exec.calls)
	assert.Contains(t, out.String(), "usage: search <keyword>")
	assert.Contains(t, out.String(), "usage: edit <n>")
	assert.Contains(t, out.String(), "usage: delete <n>")
}

func TestRunREPLStopsAtEOF(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	runREPL(exec, rdr("quit"), &out)

	assert.Empty(t, exec.calls)
	assert.Contains(t, out.String(), "Bye!")
}
