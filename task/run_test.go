package task

import "testing"

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("this-task-does-not-exist")
	if err == nil {
		t.Fatal("expected an error for a missing task file")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Errorf("expected a *ConfigError, got %T", err)
	}
}

func TestConfigErrorUnwrap(t *testing.T) {
	inner := &NumericDegeneracy{Where: "bezier solve"}
	ce := &ConfigError{Path: "task/x.json", Err: inner}
	if ce.Unwrap() != inner {
		t.Error("Unwrap should return the wrapped error")
	}
	if ce.Error() == "" {
		t.Error("Error() should not be empty")
	}
}

func TestStackUnderflowError(t *testing.T) {
	var e StackUnderflow
	if e.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
