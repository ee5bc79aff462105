package runtime

import "testing"

func TestValueKinds(t *testing.T) {
	if Int(1).Kind() != KindInteger || Float(1).Kind() != KindFloat || (NullValue{}).Kind() != KindNull {
		t.Fatalf("unexpected kinds")
	}
	if KindFloat.String() != "float" || Kind(9).String() != "unknown_kind_9" {
		t.Fatalf("unexpected kind names")
	}
}

func TestNumericHelpers(t *testing.T) {
	if !IsNumeric(Int(1)) || !IsNumeric(Float(1)) || IsNumeric(NullValue{}) {
		t.Fatalf("IsNumeric misclassified a value")
	}
	if !SameKind(Int(1), Int(2)) || SameKind(Int(1), Float(1)) || SameKind(nil, Int(1)) {
		t.Fatalf("SameKind misclassified a pair")
	}
}
