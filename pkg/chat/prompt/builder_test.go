package prompt

import (
	"strings"
	"testing"

	"ai-tireshop-be/internal/entity"
	"ai-tireshop-be/pkg/chat/grounding"
)

func testBundle() *grounding.Bundle {
	return &grounding.Bundle{
		CompanyInfo: map[string]map[string]string{
			"contact": {"phone": "780-555-0137"},
			"hours":   {"weekdays": "Mon-Fri 8:00-18:00"},
		},
		Settings: map[string]string{
			"gst_rate":            "5%",
			"local_delivery_zone": "Edmonton",
		},
		Services: []*entity.ServiceItem{
			{Name: "Tire installation", PriceNote: "from $25/wheel", Description: "Mounting and balancing"},
		},
		Policies: []*entity.Policy{
			{Title: "Payment", Body: "Cash and card in person."},
		},
		FAQs: []*entity.FAQEntry{
			{Question: "Do you repair flats?", Answer: "Yes, tread punctures only."},
		},
		Products: []*entity.Product{
			{Size: "225/65R17", Vendor: "Michelin", Type: "all_season", Price: 218.99, Availability: "in_stock"},
		},
		TireSize: "225/65/17",
	}
}

func TestBuildContainsAllSections(t *testing.T) {
	out := NewSystemBuilder(testBundle(), "viewing winter tires page").Build()

	for _, want := range []string{
		"contact phone: 780-555-0137",
		"hours weekdays: Mon-Fri 8:00-18:00",
		"GST rate: 5%",
		"Local delivery zone: Edmonton",
		"- Tire installation (from $25/wheel): Mounting and balancing",
		"Payment: Cash and card in person.",
		"Q: Do you repair flats?",
		"[Products matching 225/65/17]",
		"- Michelin 225/65R17 all_season | $218.99 | in_stock",
		"[Customer's current page]\nviewing winter tires page",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	b := testBundle()
	first := NewSystemBuilder(b, "").Build()
	for i := 0; i < 10; i++ {
		if got := NewSystemBuilder(b, "").Build(); got != first {
			t.Fatal("prompt output varies across builds of the same bundle")
		}
	}
}

func TestBuildEmptyBundle(t *testing.T) {
	out := NewSystemBuilder(&grounding.Bundle{}, "").Build()

	if !strings.Contains(out, "CONTEXT:") {
		t.Error("preamble missing")
	}
	for _, section := range []string{"[Company]", "[Services]", "[Policies]", "[FAQ]", "[Products]", "[Customer's current page]"} {
		if strings.Contains(out, section) {
			t.Errorf("empty bundle should not render %s", section)
		}
	}
}

func TestBuildBehaviorRulesAfterContext(t *testing.T) {
	out := NewSystemBuilder(testBundle(), "").Build()
	if !strings.Contains(out, "ONLY the context") {
		t.Error("grounding instruction missing")
	}
	ctxIdx := strings.Index(out, "CONTEXT:")
	rulesIdx := strings.Index(out, "RULES")
	if rulesIdx == -1 {
		t.Fatal("behavior rules missing")
	}
	if rulesIdx < ctxIdx {
		t.Error("behavior rules should come after the context block")
	}
}
