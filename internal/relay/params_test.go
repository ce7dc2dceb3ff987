package relay

import "testing"

func TestResolveParams_OverrideReplacesDefaults(t *testing.T) {
	// Precedence is wholesale: no field-level merge
	query := EncodeQuery(ResolveParams("c=3", "a=1;b=2"))

	if query != "c=3" {
		t.Errorf("Expected query c=3, got %q", query)
	}
}

func TestResolveParams_DefaultsUsedWhenNoOverride(t *testing.T) {
	query := EncodeQuery(ResolveParams("", "a=1;b=2"))

	if query != "a=1&b=2" {
		t.Errorf("Expected query a=1&b=2, got %q", query)
	}
}

func TestResolveParams_NoSourceMeansNoQuery(t *testing.T) {
	if query := EncodeQuery(ResolveParams("", "")); query != "" {
		t.Errorf("Expected empty query, got %q", query)
	}
}

func TestResolveParams_PositionalTokens(t *testing.T) {
	query := EncodeQuery(ResolveParams("10;20", ""))

	if query != "p1=10&p2=20" {
		t.Errorf("Expected p1=10&p2=20, got %q", query)
	}
}

func TestResolveParams_MixedTokensCountByPosition(t *testing.T) {
	// The positional index counts token position, not positional tokens seen
	query := EncodeQuery(ResolveParams("x=1;20", ""))

	if query != "x=1&p2=20" {
		t.Errorf("Expected x=1&p2=20, got %q", query)
	}
}

func TestResolveParams_OnlyFirstEqualsSplits(t *testing.T) {
	query := EncodeQuery(ResolveParams("expr=a=b", ""))

	if query != "expr=a%3Db" {
		t.Errorf("Expected expr=a%%3Db, got %q", query)
	}
}

func TestResolveParams_EmptyTokensPreserved(t *testing.T) {
	// An empty segment between delimiters stays as an empty positional
	// contribution rather than being dropped
	query := EncodeQuery(ResolveParams("a=1;;b=2", ""))

	if query != "a=1&p2=&b=2" {
		t.Errorf("Expected a=1&p2=&b=2, got %q", query)
	}
}

func TestResolveParams_SingleEmptyOverrideFallsBackToDefaults(t *testing.T) {
	// An entirely empty override string counts as "absent"
	query := EncodeQuery(ResolveParams("", "x=9"))

	if query != "x=9" {
		t.Errorf("Expected x=9, got %q", query)
	}
}

func TestEncodeQuery_EscapesKeysAndValues(t *testing.T) {
	query := EncodeQuery(ResolveParams("start date=2024-01-01;city=São Paulo", ""))

	expected := "start+date=2024-01-01&city=S%C3%A3o+Paulo"
	if query != expected {
		t.Errorf("Expected %q, got %q", expected, query)
	}
}

func TestEncodeQuery_Deterministic(t *testing.T) {
	input := "b=2;a=1;p"
	first := EncodeQuery(ResolveParams(input, ""))
	for i := 0; i < 10; i++ {
		if got := EncodeQuery(ResolveParams(input, "")); got != first {
			t.Fatalf("Encoding not deterministic: %q vs %q", first, got)
		}
	}
	if first != "b=2&a=1&p3=p" {
		t.Errorf("Expected b=2&a=1&p3=p, got %q", first)
	}
}
