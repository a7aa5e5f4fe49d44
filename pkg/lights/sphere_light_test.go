package lights

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

func TestSphereLight_ShadowJittersTarget(t *testing.T) {
	light := NewSphereLight(core.White, core.NewVec3(0, 10, 0), 2, 10)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	directions := make(map[core.Vec3]bool)
	for i := 0; i < 100; i++ {
		attenuation, toLight := light.Shadow(core.Vec3{}, occluders(), sampler)

		if math.Abs(toLight.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %f", toLight.Length())
		}
		// Target stays within radius of the center: distance in [8, 12]
		if attenuation < (10.0/12.0)*(10.0/12.0)-1e-9 || attenuation > (10.0/8.0)*(10.0/8.0)+1e-9 {
			t.Fatalf("Attenuation %f outside the range allowed by the radius", attenuation)
		}
		directions[toLight] = true
	}

	if len(directions) < 2 {
		t.Error("Expected jittered directions toward the light")
	}
}

func TestSphereLight_Penumbra(t *testing.T) {
	light := NewSphereLight(core.White, core.NewVec3(0, 10, 0), 2, 10)
	blocker := geometry.NewSphere(core.NewVec3(0, 5, 0), 0.5, core.Surface{})
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))

	const samples = 2000
	blocked := 0
	for i := 0; i < samples; i++ {
		if attenuation, _ := light.Shadow(core.Vec3{}, occluders(blocker), sampler); attenuation == 0 {
			blocked++
		}
	}

	if blocked == 0 || blocked == samples {
		t.Errorf("Expected a partial shadow, %d of %d samples blocked", blocked, samples)
	}
}
