package http

import (
	"errors"
	"testing"
)

type validationProbe struct {
	ActorID string  `validate:"required,hex32"`
	Amount  float64 `validate:"gte=0,dec2"`
	Status  string  `validate:"omitempty,oneof=settled blacklist"`
}

func TestCustomValidator_Hex32(t *testing.T) {
	cv := NewValidator()

	cases := []struct {
		name    string
		actorID string
		wantOK  bool
	}{
		{"valid", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", true},
		{"too short", "aaaa", false},
		{"uppercase", "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", false},
		{"non-hex", "gggggggggggggggggggggggggggggggg", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := cv.Validate(&validationProbe{ActorID: tc.actorID})
			if (err == nil) != tc.wantOK {
				t.Errorf("Validate err = %v, wantOK %v", err, tc.wantOK)
			}
		})
	}
}

func TestCustomValidator_Dec2(t *testing.T) {
	cv := NewValidator()
	const actor = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

	cases := []struct {
		name   string
		amount float64
		wantOK bool
	}{
		{"integer", 100, true},
		{"two places", 99.99, true},
		{"three places", 10.001, false},
		{"negative", -1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := cv.Validate(&validationProbe{ActorID: actor, Amount: tc.amount})
			if (err == nil) != tc.wantOK {
				t.Errorf("Validate err = %v, wantOK %v", err, tc.wantOK)
			}
		})
	}
}

func TestToFieldErrors_ReadableMessages(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&validationProbe{ActorID: "bad", Amount: 1.234, Status: "open"})
	if err == nil {
		t.Fatal("expected validation failure")
	}

	fields := ToFieldErrors(err)
	byField := map[string]string{}
	for _, f := range fields {
		byField[f.Field] = f.Message
	}
	if byField["ActorID"] != "must be 32-char lowercase hex" {
		t.Errorf("ActorID message = %q", byField["ActorID"])
	}
	if byField["Amount"] != "must have at most 2 decimal places" {
		t.Errorf("Amount message = %q", byField["Amount"])
	}
	if byField["Status"] != "must be one of: settled blacklist" {
		t.Errorf("Status message = %q", byField["Status"])
	}
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	fields := ToFieldErrors(errors.New("broken"))
	if len(fields) != 1 || fields[0].Field != "_" || fields[0].Message != "broken" {
		t.Fatalf("unexpected mapping: %+v", fields)
	}
}
