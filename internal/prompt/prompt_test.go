package prompt

import (
	"errors"
	"testing"

	"github.com/wwwyo/xatsw/internal/platform/fs"
)

func TestTextConstraintsValidate(t *testing.T) {
	mock := fs.NewMockFileSystem()
	mock.Dirs["/storage"] = true
	mock.Files["/storage/taken"] = []byte("x")

	c := TextConstraints{
		NotEmpty:       true,
		FileName:       true,
		MustNotExistIn: "/storage",
		FS:             mock,
	}

	tests := []struct {
		name  string
		value string
		want  error
	}{
		{name: "valid new name", value: "fresh", want: nil},
		{name: "empty", value: "", want: ErrEmpty},
		{name: "blank", value: "   ", want: ErrEmpty},
		{name: "separator", value: "a/b", want: ErrInvalidFileName},
		{name: "dot", value: ".", want: ErrInvalidFileName},
		{name: "dot dot", value: "..", want: ErrInvalidFileName},
		{name: "existing file", value: "taken", want: ErrAlreadyExists},
		{name: "surrounding spaces", value: " x ", want: ErrInvalidFileName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Validate(tt.value)
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate(%q) = %v, want %v", tt.value, err, tt.want)
			}
		})
	}
}

func TestScriptedAskText(t *testing.T) {
	mock := fs.NewMockFileSystem()
	mock.Dirs["/storage"] = true
	mock.Files["/storage/taken"] = []byte("x")
	c := TextConstraints{NotEmpty: true, FileName: true, MustNotExistIn: "/storage", FS: mock}

	t.Run("skips rejected answers", func(t *testing.T) {
		p := &Scripted{Texts: []string{"", "taken", "ok"}}

		got, err := p.AskText("name?", c)
		if err != nil {
			t.Fatalf("AskText() error = %v", err)
		}
		if got != "ok" {
			t.Errorf("AskText() = %q, want ok", got)
		}
		if len(p.Rejected) != 2 || !errors.Is(p.Rejected[1], ErrAlreadyExists) {
			t.Errorf("Rejected = %v, want [empty, already exists]", p.Rejected)
		}
	})

	t.Run("exhaustion aborts", func(t *testing.T) {
		p := &Scripted{Texts: []string{"taken"}}

		_, err := p.AskText("name?", c)
		if !errors.Is(err, ErrNoAnswer) || !errors.Is(err, ErrAborted) {
			t.Fatalf("AskText() error = %v, want ErrNoAnswer wrapping ErrAborted", err)
		}
	})
}

func TestScriptedAskConfirm(t *testing.T) {
	p := &Scripted{Confirms: []bool{true, false}}

	for _, want := range []bool{true, false} {
		got, err := p.AskConfirm("overwrite?")
		if err != nil {
			t.Fatalf("AskConfirm() error = %v", err)
		}
		if got != want {
			t.Errorf("AskConfirm() = %v, want %v", got, want)
		}
	}

	if _, err := p.AskConfirm("again?"); !errors.Is(err, ErrAborted) {
		t.Errorf("AskConfirm() error = %v, want ErrAborted", err)
	}
	if len(p.Asked) != 3 {
		t.Errorf("Asked = %v, want 3 prompts", p.Asked)
	}
}

func TestYes(t *testing.T) {
	inner := &Scripted{Texts: []string{"name"}}
	p := Yes{Prompter: inner}

	ok, err := p.AskConfirm("overwrite?")
	if err != nil || !ok {
		t.Fatalf("AskConfirm() = %v, %v, want true, nil", ok, err)
	}
	if len(inner.Asked) != 0 {
		t.Error("Yes should not forward confirmations")
	}

	got, err := p.AskText("name?", TextConstraints{NotEmpty: true})
	if err != nil || got != "name" {
		t.Fatalf("AskText() = %q, %v, want name, nil", got, err)
	}
}

func TestDeclinedIsAborted(t *testing.T) {
	if !errors.Is(ErrDeclined, ErrAborted) {
		t.Fatal("ErrDeclined should wrap ErrAborted")
	}
	if errors.Is(ErrNoAnswer, ErrDeclined) {
		t.Fatal("ErrNoAnswer should not be a decline")
	}
}
