package hwy

import "testing"

func TestSaturatedAddUint8(t *testing.T) {
	a := Load([]uint8{250, 100, 0, 255})
	b := Load([]uint8{10, 50, 100, 1})
	result := SaturatedAdd(a, b)

	expected := []uint8{255, 150, 100, 255} // 250+10 saturates to 255
	for i := 0; i < len(expected) && i < result.NumLanes(); i++ {
		if result.data[i] != expected[i] {
			t.Errorf("SaturatedAdd uint8: lane %d: got %d, want %d", i, result.data[i], expected[i])
		}
	}
}

func TestSaturatedAddInt8(t *testing.T) {
	a := Load([]int8{120, -120, 50, -50})
	b := Load([]int8{10, -10, 50, -50})
	result := SaturatedAdd(a, b)

	expected := []int8{127, -128, 100, -100} // 120+10=130 saturates to 127
	for i := 0; i < len(expected) && i < result.NumLanes(); i++ {
		if result.data[i] != expected[i] {
			t.Errorf("SaturatedAdd int8: lane %d: got %d, want %d", i, result.data[i], expected[i])
		}
	}
}

func TestSaturatedAddInt16(t *testing.T) {
	a := Load([]int16{32760, -32760, 100, -100})
	b := Load([]int16{10, -10, 50, -50})
	result := SaturatedAdd(a, b)

	expected := []int16{32767, -32768, 150, -150}
	for i := 0; i < len(expected) && i < result.NumLanes(); i++ {
		if result.data[i] != expected[i] {
			t.Errorf("SaturatedAdd int16: lane %d: got %d, want %d", i, result.data[i], expected[i])
		}
	}
}

func TestSaturatedAddUint16(t *testing.T) {
	a := Load([]uint16{65530, 100, 0, 65535})
	b := Load([]uint16{10, 50, 100, 1})
	result := SaturatedAdd(a, b)

	expected := []uint16{65535, 150, 100, 65535}
	for i := 0; i < len(expected) && i < result.NumLanes(); i++ {
		if result.data[i] != expected[i] {
			t.Errorf("SaturatedAdd uint16: lane %d: got %d, want %d", i, result.data[i], expected[i])
		}
	}
}

func TestSaturatedSubUint8(t *testing.T) {
	a := Load([]uint8{10, 100, 0, 255})
	b := Load([]uint8{20, 50, 100, 1})
	result := SaturatedSub(a, b)

	expected := []uint8{0, 50, 0, 254} // 10-20 saturates to 0
	for i := 0; i < len(expected) && i < result.NumLanes(); i++ {
		if result.data[i] != expected[i] {
			t.Errorf("SaturatedSub uint8: lane %d: got %d, want %d", i, result.data[i], expected[i])
		}
	}
}

func TestSaturatedSubInt8(t *testing.T) {
	a := Load([]int8{-120, 120, 50, -50})
	b := Load([]int8{10, -10, 50, -50})
	result := SaturatedSub(a, b)

	expected := []int8{-128, 127, 0, 0} // -120-10=-130 saturates to -128
	for i := 0; i < len(expected) && i < result.NumLanes(); i++ {
		if result.data[i] != expected[i] {
			t.Errorf("SaturatedSub int8: lane %d: got %d, want %d", i, result.data[i], expected[i])
		}
	}
}

func TestSaturatedSubInt16(t *testing.T) {
	a := Load([]int16{-32760, 32760, 100, -100})
	b := Load([]int16{10, -10, 50, -50})
	result := SaturatedSub(a, b)

	expected := []int16{-32768, 32767, 50, -50}
	for i := 0; i < len(expected) && i < result.NumLanes(); i++ {
		if result.data[i] != expected[i] {
			t.Errorf("SaturatedSub int16: lane %d: got %d, want %d", i, result.data[i], expected[i])
		}
	}
}

func TestClampInt(t *testing.T) {
	v := Load([]int32{-100, -50, 0, 50, 100})
	lo := Load([]int32{-25, -25, -25, -25, -25})
	hi := Load([]int32{25, 25, 25, 25, 25})
	result := Clamp(v, lo, hi)

	expected := []int32{-25, -25, 0, 25, 25}
	for i := 0; i < len(expected) && i < result.NumLanes(); i++ {
		if result.data[i] != expected[i] {
			t.Errorf("Clamp int: lane %d: got %d, want %d", i, result.data[i], expected[i])
		}
	}
}

func TestClampInt8(t *testing.T) {
	v := Load([]int8{-120, -10, 0, 10, 120})
	lo := SetN[int8](-20, 5)
	hi := SetN[int8](20, 5)
	result := Clamp(v, lo, hi)

	expected := []int8{-20, -10, 0, 10, 20}
	for i := 0; i < len(expected) && i < result.NumLanes(); i++ {
		if result.data[i] != expected[i] {
			t.Errorf("Clamp int8: lane %d: got %d, want %d", i, result.data[i], expected[i])
		}
	}
}
