package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindInvalidSymbol,
				Path:   []string{"seq[3]"},
				Detail: "invalid symbol 'X'",
			},
			contains: []string{"[parse]", "invalid_symbol", "seq[3]", "invalid symbol 'X'"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseAccess,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[access]", "out_of_bounds"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseMarshal,
				Kind:   KindInvalidData,
				Detail: "bad framing",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[marshal]", "invalid_data", "bad framing", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseParse,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseParse,
		Kind:  KindInvalidSymbol,
		Path:  []string{"seq[0]"},
	}

	if !errors.Is(err, &Error{Phase: PhaseParse, Kind: KindInvalidSymbol}) {
		t.Error("Is should match on phase and kind, ignoring path")
	}
	if errors.Is(err, &Error{Phase: PhaseDecode, Kind: KindInvalidSymbol}) {
		t.Error("Is matched a different phase")
	}
	if errors.Is(err, &Error{Phase: PhaseParse, Kind: KindOutOfBounds}) {
		t.Error("Is matched a different kind")
	}
	if errors.Is(err, errors.New("plain")) {
		t.Error("Is matched a non-structured error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("io failure")
	err := New(PhaseMarshal, KindTruncated).
		Path("header").
		Value(3).
		Detail("want %d bytes, got %d", 8, 3).
		Cause(cause).
		Build()

	if err.Phase != PhaseMarshal || err.Kind != KindTruncated {
		t.Errorf("Build() phase/kind = %s/%s", err.Phase, err.Kind)
	}
	if err.Value != 3 {
		t.Errorf("Value = %v, want 3", err.Value)
	}
	if err.Detail != "want 8 bytes, got 3" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if !errors.Is(err, err) || err.Unwrap() != cause {
		t.Error("cause chain broken")
	}
}

func TestInvalidSymbol(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"rune", 'X', `invalid symbol 'X'`},
		{"byte", byte('z'), `invalid symbol 'z'`},
		{"string", "XY", `invalid symbol "XY"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InvalidSymbol(PhaseParse, nil, tt.value)
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Error() = %q, want substring %q", err.Error(), tt.want)
			}
		})
	}
}

func TestOutOfBounds(t *testing.T) {
	err := OutOfBounds(PhaseAccess, []string{"seq"}, 5, 5)
	if err.Kind != KindOutOfBounds {
		t.Errorf("Kind = %s, want %s", err.Kind, KindOutOfBounds)
	}
	if !strings.Contains(err.Error(), "index 5 out of bounds (length 5)") {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Value != 5 {
		t.Errorf("Value = %v, want 5", err.Value)
	}
}

func TestTruncated(t *testing.T) {
	err := Truncated(PhaseMarshal, 8, 3)
	if err.Kind != KindTruncated {
		t.Errorf("Kind = %s, want %s", err.Kind, KindTruncated)
	}
	if !strings.Contains(err.Error(), "want 8 bytes, got 3") {
		t.Errorf("Error() = %q", err.Error())
	}
}
