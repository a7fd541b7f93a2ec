package request

import (
	"errors"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateProfile_Validate(t *testing.T) {
	ok := CreateProfile{Age: intPtr(30), Gender: strPtr("female")}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	missingAge := CreateProfile{Gender: strPtr("female")}
	err := missingAge.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0] != "age" {
		t.Fatalf("expected [age], got %v", verr.Fields)
	}

	emptyGender := CreateProfile{Age: intPtr(30), Gender: strPtr("")}
	if err := emptyGender.Validate(); err == nil {
		t.Fatalf("expected error for empty gender")
	}

	// Goal is optional.
	noGoal := CreateProfile{Age: intPtr(30), Gender: strPtr("male")}
	if err := noGoal.Validate(); err != nil {
		t.Fatalf("unexpected err without goal: %v", err)
	}
}

func TestGenerateTips_Validate(t *testing.T) {
	ok := GenerateTips{Age: intPtr(25), Gender: strPtr("male"), Goal: strPtr("sleep better")}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	empty := GenerateTips{}
	err := empty.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %v", verr.Fields)
	}
	if !strings.Contains(verr.Error(), "age") || !strings.Contains(verr.Error(), "goal") {
		t.Fatalf("message should name the fields: %q", verr.Error())
	}
}

func TestGenerateTipDetail_Validate(t *testing.T) {
	ok := GenerateTipDetail{Age: intPtr(40), Gender: strPtr("female"), Goal: strPtr("reduce stress"), TipTitle: strPtr("Morning walks")}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	missingTitle := GenerateTipDetail{Age: intPtr(40), Gender: strPtr("female"), Goal: strPtr("reduce stress")}
	err := missingTitle.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0] != "tip_title" {
		t.Fatalf("expected [tip_title], got %v", verr.Fields)
	}
}

func TestSaveTip_Validate(t *testing.T) {
	fullTip := &TipPayload{
		Title:           strPtr("Drink more water"),
		IconKeyword:     strPtr("droplet"),
		ExplanationLong: strPtr("Hydration matters."),
		Steps:           []string{"Keep a bottle nearby"},
	}

	ok := SaveTip{UserID: strPtr("abc123"), Tip: fullTip}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	noTip := SaveTip{UserID: strPtr("abc123")}
	err := noTip.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0] != "tip" {
		t.Fatalf("expected [tip], got %v", verr.Fields)
	}

	partial := SaveTip{
		UserID: strPtr("abc123"),
		Tip: &TipPayload{
			Title: strPtr("Drink more water"),
			Steps: []string{},
		},
	}
	err = partial.Validate()
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 3 {
		t.Fatalf("expected 3 missing tip fields, got %v", verr.Fields)
	}

	noUser := SaveTip{Tip: fullTip}
	err = noUser.Validate()
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0] != "userId" {
		t.Fatalf("expected [userId], got %v", verr.Fields)
	}
}

func TestGetSavedTips_Validate(t *testing.T) {
	if err := (GetSavedTips{UserID: "abc"}).Validate(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := (GetSavedTips{}).Validate(); err == nil {
		t.Fatalf("expected error for empty userId")
	}
}
