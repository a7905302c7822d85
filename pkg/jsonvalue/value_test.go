package jsonvalue

import "testing"

func TestZeroValueIsNull(t *testing.T) {
	var v Value
	if v.Type() != Null {
		t.Errorf("zero Value.Type() = %s, want null", v.Type())
	}
}

func TestSetBool(t *testing.T) {
	var v Value
	v.SetBool(true)
	if v.Type() != True || v.Bool() != true {
		t.Errorf("SetBool(true): Type=%s Bool=%v", v.Type(), v.Bool())
	}
	v.SetBool(false)
	if v.Type() != False || v.Bool() != false {
		t.Errorf("SetBool(false): Type=%s Bool=%v", v.Type(), v.Bool())
	}
}

func TestSetNumber(t *testing.T) {
	var v Value
	v.SetNumber(3.5)
	if v.Type() != Number || v.NumberValue() != 3.5 {
		t.Errorf("SetNumber(3.5): Type=%s Num=%v", v.Type(), v.NumberValue())
	}
}

func TestSetStringReleasesPriorPayload(t *testing.T) {
	var v Value
	v.SetArray()
	v.AppendElement(Value{})
	v.SetString("hello")
	if v.Type() != String || v.Str() != "hello" {
		t.Fatalf("SetString after SetArray: Type=%s Str=%q", v.Type(), v.Str())
	}
}

func TestArrayAppendAndIndex(t *testing.T) {
	var v Value
	v.SetArray()
	var a, b Value
	a.SetNumber(1)
	b.SetNumber(2)
	v.AppendElement(a)
	v.AppendElement(b)

	if v.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", v.Len())
	}
	if v.Index(0).NumberValue() != 1 || v.Index(1).NumberValue() != 2 {
		t.Errorf("array elements out of order")
	}
}

func TestObjectAppendMemberRetainsDuplicateKeys(t *testing.T) {
	var v Value
	v.SetObject()
	var a, b Value
	a.SetNumber(1)
	b.SetNumber(2)
	v.AppendMember("a", a)
	v.AppendMember("a", b)

	if v.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", v.Len())
	}
	if v.MemberAt(0).Key != "a" || v.MemberAt(0).Value.NumberValue() != 1 {
		t.Errorf("first member wrong: %+v", v.MemberAt(0))
	}
	if v.MemberAt(1).Key != "a" || v.MemberAt(1).Value.NumberValue() != 2 {
		t.Errorf("second member wrong: %+v", v.MemberAt(1))
	}

	found, ok := v.Find("a")
	if !ok || found.NumberValue() != 1 {
		t.Errorf("Find(\"a\") should return the first occurrence, got %+v ok=%v", found, ok)
	}
}

func TestAccessorPanicsOnWrongVariant(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling Str() on a Number value")
		}
	}()
	var v Value
	v.SetNumber(1)
	_ = v.Str()
}

func TestEqual(t *testing.T) {
	var a, b Value
	a.SetArray()
	b.SetArray()
	var x1, x2 Value
	x1.SetNumber(1)
	x2.SetNumber(1)
	a.AppendElement(x1)
	b.AppendElement(x2)

	if !a.Equal(&b) {
		t.Error("expected equal arrays to compare Equal")
	}

	var y Value
	y.SetString("1")
	var c Value
	c.SetArray()
	c.AppendElement(y)
	if a.Equal(&c) {
		t.Error("expected number 1 and string \"1\" to differ")
	}
}

func TestEqualObjectOrderMatters(t *testing.T) {
	var a, b Value
	a.SetObject()
	b.SetObject()
	var one, two Value
	one.SetNumber(1)
	two.SetNumber(2)
	a.AppendMember("x", one)
	a.AppendMember("y", two)
	b.AppendMember("y", two)
	b.AppendMember("x", one)

	if a.Equal(&b) {
		t.Error("objects with members in different order should not be Equal")
	}
}
