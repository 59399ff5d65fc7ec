package resist

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound matches every failure to locate a section, variant,
	// table or shadow after the fallbacks are exhausted.
	ErrNotFound = errors.New("not found")
	// ErrShapeMismatch matches tables whose header and value rows disagree.
	ErrShapeMismatch = errors.New("table shape mismatch")
	// ErrSelector matches selectors built from input that fail to compile.
	ErrSelector = errors.New("invalid selector")

	ErrUnknownGame = errors.New("unknown game")
	ErrInvalidGame = errors.New("invalid game descriptor")
)

type NoSectionError struct {
	Title  string
	Labels []string
}

func (e *NoSectionError) Error() string {
	return fmt.Sprintf("no section for %s (tabs: %s)", e.Title, strings.Join(e.Labels, ", "))
}

func (e *NoSectionError) Is(target error) bool { return target == ErrNotFound }

type NoVariantError struct {
	Title   string
	Variant string
	Labels  []string
}

func (e *NoVariantError) Error() string {
	return fmt.Sprintf("no variant %q in %s (tabs: %s)", e.Variant, e.Title, strings.Join(e.Labels, ", "))
}

func (e *NoVariantError) Is(target error) bool { return target == ErrNotFound }

type NoTableError struct {
	Variant string
}

func (e *NoTableError) Error() string {
	if e.Variant == "" {
		return "no resistance table in section"
	}
	return fmt.Sprintf("no resistance table under tab %q", e.Variant)
}

func (e *NoTableError) Is(target error) bool { return target == ErrNotFound }

type ShapeError struct {
	Headers int
	Values  int
	// BlankColumn is the 1-based column whose header yields no label, 0
	// when the row lengths are the problem.
	BlankColumn int
}

func (e *ShapeError) Error() string {
	if e.BlankColumn > 0 {
		return fmt.Sprintf("table header %d of %d has no label", e.BlankColumn, e.Headers)
	}
	return fmt.Sprintf("table has %d header cells and %d value cells", e.Headers, e.Values)
}

func (e *ShapeError) Is(target error) bool { return target == ErrShapeMismatch }

type SelectorError struct {
	Selector string
	Err      error
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("selector %q: %v", e.Selector, e.Err)
}

func (e *SelectorError) Unwrap() error { return e.Err }

func (e *SelectorError) Is(target error) bool { return target == ErrSelector }

// NoShadowError reports a shadow without a page, or whose page does not
// list the requested game.
type NoShadowError struct {
	Name string
	Game string
}

func (e *NoShadowError) Error() string {
	return fmt.Sprintf("Shadow not found: %s for game: %s", e.Name, e.Game)
}

func (e *NoShadowError) Is(target error) bool { return target == ErrNotFound }
