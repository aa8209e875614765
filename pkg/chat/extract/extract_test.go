package extract

import "testing"

func TestTireSize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"slash with R", "I need 225/65R17 tires", "225/65/17"},
		{"all slashes", "do you have 205/55/16", "205/55/16"},
		{"dashes", "size 225-65-17 please", "225/65/17"},
		{"spaces", "looking for 265 70 17", "265/70/17"},
		{"lowercase r", "195/65r15 in stock?", "195/65/15"},
		{"no size", "what are your hours", ""},
		{"first size wins", "compare 205/55R16 and 225/65R17", "205/55/16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TireSize(tt.in); got != tt.want {
				t.Errorf("TireSize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	if got := Email("reach me at jo.smith+quotes@example.co"); got != "jo.smith+quotes@example.co" {
		t.Errorf("got %q", got)
	}
	if got := Email("no contact info here"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
	if got := Email("price is 200 @ the counter"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dashed", "call me at 780-555-1234 anytime", "780-555-1234"},
		{"parens", "my cell is (780) 555-1234", "(780) 555-1234"},
		{"bare ten digits", "7805551234 is my number", "7805551234"},
		{"country code", "+1 780 555 1234", "+1 780 555 1234"},
		{"too few digits", "item code 555-1234", ""},
		{"tire size is not a phone", "looking for 225/65R17", ""},
		{"no phone", "do you open saturdays", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Phone(tt.in); got != tt.want {
				t.Errorf("Phone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIntent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dealer beats quote", "dealer pricing quote please", "dealer_inquiry"},
		{"fleet beats booking", "book service for our fleet", "fleet_inquiry"},
		{"booking beats quote", "book an appointment, what's the price", "booking_request"},
		{"quote", "how much for winter tires", "quote_request"},
		{"callback", "please call me back tomorrow", "callback_request"},
		{"tire search by keyword", "recommend something for my truck", "tire_search"},
		{"general", "where are you located", "general_inquiry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intent(tt.in, TireSize(tt.in)); got != tt.want {
				t.Errorf("Intent(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	// Size presence alone classifies as tire search.
	if got := Intent("225/65R17", "225/65/17"); got != "tire_search" {
		t.Errorf("size-only message classified as %q", got)
	}
}

func TestShouldCaptureLead(t *testing.T) {
	e := FromMessage("how much for 225/65R17")
	if !e.ShouldCaptureLead() {
		t.Error("quote intent should capture a lead")
	}

	e = FromMessage("my email is jo@example.com, just browsing")
	if !e.ShouldCaptureLead() {
		t.Error("contact info should capture a lead regardless of intent")
	}

	e = FromMessage("what are your opening hours")
	if e.ShouldCaptureLead() {
		t.Error("general inquiry without contact info should not capture a lead")
	}
}

func TestSizeParts(t *testing.T) {
	w, a, d, ok := SizeParts("225/65/17")
	if !ok || w != "225" || a != "65" || d != "17" {
		t.Errorf("got %s %s %s %v", w, a, d, ok)
	}
	if _, _, _, ok := SizeParts("not a size"); ok {
		t.Error("expected ok=false")
	}
}
