package core

import "testing"

// mockShape implements Shape with a fixed normal
type mockShape struct {
	surface Surface
	normal  Vec3
}

func (m mockShape) Intersect(ray Ray) (float64, bool) { return 0, false }
func (m mockShape) Normal(point Vec3) Vec3          { return m.normal }
func (m mockShape) Material() Surface               { return m.surface }

func TestFindTexture_CopiesMaterialAndSetsNormal(t *testing.T) {
	base := Surface{Kd: 0.5, Ks: 0.3, P: 20, Color: Red, Medium: Glass}
	shape := mockShape{surface: base, normal: NewVec3(0, 1, 0)}

	texture := FindTexture(shape, NewVec3(1, 2, 3))

	if !texture.Normal.Equals(NewVec3(0, 1, 0)) {
		t.Errorf("Expected normal (0,1,0), got %v", texture.Normal)
	}
	if texture.Kd != base.Kd || texture.Ks != base.Ks || texture.P != base.P {
		t.Errorf("Expected coefficients copied from base, got %+v", texture)
	}
	if texture.Medium != Glass {
		t.Errorf("Expected glass medium, got %+v", texture.Medium)
	}
	if !shape.surface.Normal.Equals(Vec3{}) {
		t.Error("FindTexture must not modify the shape's base surface")
	}
}

func TestParseFidelity(t *testing.T) {
	tests := []struct {
		input    string
		expected Fidelity
		ok       bool
	}{
		{"strict", FidelityStrict, true},
		{"", FidelityStrict, true},
		{"corrected", FidelityCorrected, true},
		{"bogus", FidelityStrict, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, ok := ParseFidelity(tt.input)
			if f != tt.expected || ok != tt.ok {
				t.Errorf("ParseFidelity(%q) = (%v, %v), want (%v, %v)", tt.input, f, ok, tt.expected, tt.ok)
			}
			if ok && tt.input != "" && f.String() != tt.input {
				t.Errorf("String() = %q, want %q", f.String(), tt.input)
			}
		})
	}
}
