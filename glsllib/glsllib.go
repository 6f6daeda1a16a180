// Package glsllib is the built-in importable shader library.
//
// It provides a namespace named "shaderlib" holding definition trees for
// small reusable GLSL functions. Shader bodies pull them in with an
// import form:
//
//	(import (shaderlib saturate luminance))
//
// and the generation pass emits each imported definition once, ahead of
// the entry point. The definition trees are built programmatically, so
// numeric constants (degree conversion factors, Gaussian weights) are
// computed in Go rather than spelled out in shader text.
package glsllib

import (
	"github.com/chewxy/math32"

	"github.com/gerred/penumbra/glsl"
	"github.com/gerred/penumbra/sexp"
)

// Name is the namespace name the library registers under.
const Name = "shaderlib"

// blurRadius and blurSigma shape the default gauss-blur binding.
const (
	blurRadius = 4
	blurSigma  = 2.0
)

// Namespace builds the shaderlib namespace. Each call returns a fresh
// namespace, so callers may add their own bindings without affecting
// other compilations.
func Namespace() *glsl.Namespace {
	ns := glsl.NewNamespace(Name)
	ns.Bind("saturate", Saturate())
	ns.Bind("luminance", Luminance())
	ns.Bind("deg-to-rad", DegToRad())
	ns.Bind("smooth-pulse", SmoothPulse())
	ns.Bind("rotate-2d", Rotate2D())
	ns.Bind("gauss-blur", GaussBlur(blurRadius, blurSigma))
	return ns
}

// Saturate clamps a value to the [0, 1] range.
func Saturate() sexp.Node {
	return sexp.List(sexp.Sym("defn"), sexp.Sym("float"), sexp.Sym("saturate"),
		sexp.List(sexp.Sym("float"), sexp.Sym("x")),
		sexp.List(sexp.Sym("return"),
			sexp.List(sexp.Sym("clamp"), sexp.Sym("x"), sexp.Float(0), sexp.Float(1))))
}

// Luminance computes perceived brightness from linear RGB using the
// Rec. 709 coefficients.
func Luminance() sexp.Node {
	return sexp.List(sexp.Sym("defn"), sexp.Sym("float"), sexp.Sym("luminance"),
		sexp.List(sexp.Sym("vec3"), sexp.Sym("c")),
		sexp.List(sexp.Sym("return"),
			sexp.List(sexp.Sym("dot"), sexp.Sym("c"),
				sexp.List(sexp.Sym("vec3"),
					sexp.Float(0.2126), sexp.Float(0.7152), sexp.Float(0.0722)))))
}

// DegToRad converts degrees to radians. The conversion factor is baked
// into the definition as a literal.
func DegToRad() sexp.Node {
	return sexp.List(sexp.Sym("defn"), sexp.Sym("float"), sexp.Sym("deg-to-rad"),
		sexp.List(sexp.Sym("float"), sexp.Sym("degrees")),
		sexp.List(sexp.Sym("return"),
			sexp.List(sexp.Sym("*"), sexp.Sym("degrees"), sexp.Float(math32.Pi/180))))
}

// SmoothPulse is a smooth bump of the given width centered on an edge
// value, built from two opposed smoothsteps.
func SmoothPulse() sexp.Node {
	return sexp.List(sexp.Sym("defn"), sexp.Sym("float"), sexp.Sym("smooth-pulse"),
		sexp.List(
			sexp.List(sexp.Sym("float"), sexp.Sym("center")),
			sexp.List(sexp.Sym("float"), sexp.Sym("width")),
			sexp.List(sexp.Sym("float"), sexp.Sym("x"))),
		sexp.List(sexp.Sym("return"),
			sexp.List(sexp.Sym("-"),
				sexp.List(sexp.Sym("smoothstep"),
					sexp.List(sexp.Sym("-"), sexp.Sym("center"), sexp.Sym("width")),
					sexp.Sym("center"), sexp.Sym("x")),
				sexp.List(sexp.Sym("smoothstep"),
					sexp.Sym("center"),
					sexp.List(sexp.Sym("+"), sexp.Sym("center"), sexp.Sym("width")),
					sexp.Sym("x")))))
}

// Rotate2D rotates a vec2 by an angle in radians. The body uses a let
// form, which the generation pass expands before emission.
func Rotate2D() sexp.Node {
	return sexp.List(sexp.Sym("defn"), sexp.Sym("vec2"), sexp.Sym("rotate-2d"),
		sexp.List(
			sexp.List(sexp.Sym("vec2"), sexp.Sym("v")),
			sexp.List(sexp.Sym("float"), sexp.Sym("angle"))),
		sexp.List(sexp.Sym("let"),
			sexp.List(
				sexp.List(sexp.Sym("float"), sexp.Sym("s")), sexp.List(sexp.Sym("sin"), sexp.Sym("angle")),
				sexp.List(sexp.Sym("float"), sexp.Sym("c")), sexp.List(sexp.Sym("cos"), sexp.Sym("angle"))),
			sexp.List(sexp.Sym("return"),
				sexp.List(sexp.Sym("vec2"),
					sexp.List(sexp.Sym("-"),
						sexp.List(sexp.Sym("*"), sexp.Sym("c"), sexp.List(sexp.Sym(".x"), sexp.Sym("v"))),
						sexp.List(sexp.Sym("*"), sexp.Sym("s"), sexp.List(sexp.Sym(".y"), sexp.Sym("v")))),
					sexp.List(sexp.Sym("+"),
						sexp.List(sexp.Sym("*"), sexp.Sym("s"), sexp.List(sexp.Sym(".x"), sexp.Sym("v"))),
						sexp.List(sexp.Sym("*"), sexp.Sym("c"), sexp.List(sexp.Sym(".y"), sexp.Sym("v"))))))))
}

// GaussWeights computes normalized 1D Gaussian kernel weights for taps
// 0..radius. Weight i applies to the taps at distance i on both sides,
// so normalization counts every weight except the center twice.
func GaussWeights(radius int, sigma float32) []float32 {
	weights := make([]float32, radius+1)
	sum := float32(0)
	for i := 0; i <= radius; i++ {
		x := float32(i)
		weights[i] = math32.Exp(-(x * x) / (2 * sigma * sigma))
		if i == 0 {
			sum += weights[i]
		} else {
			sum += 2 * weights[i]
		}
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}

// GaussBlur builds a separable 1D Gaussian blur with the taps unrolled
// and the normalized weights baked in as literals. The stride parameter
// is the UV offset between taps; pass a horizontal stride and a vertical
// stride in two passes for a full 2D blur.
func GaussBlur(radius int, sigma float32) sexp.Node {
	weights := GaussWeights(radius, sigma)

	body := []sexp.Node{
		sexp.List(sexp.Sym("declare"),
			sexp.List(sexp.Sym("vec4"), sexp.Sym("acc")),
			sexp.List(sexp.Sym("*"),
				sexp.List(sexp.Sym("texture2D"), sexp.Sym("tex"), sexp.Sym("uv")),
				sexp.Float(weights[0]))),
	}
	for i := 1; i <= radius; i++ {
		offset := sexp.List(sexp.Sym("*"), sexp.Sym("stride"), sexp.Float(float32(i)))
		body = append(body,
			sexp.List(sexp.Sym("+="), sexp.Sym("acc"),
				sexp.List(sexp.Sym("*"),
					sexp.List(sexp.Sym("texture2D"), sexp.Sym("tex"),
						sexp.List(sexp.Sym("+"), sexp.Sym("uv"), offset)),
					sexp.Float(weights[i]))),
			sexp.List(sexp.Sym("+="), sexp.Sym("acc"),
				sexp.List(sexp.Sym("*"),
					sexp.List(sexp.Sym("texture2D"), sexp.Sym("tex"),
						sexp.List(sexp.Sym("-"), sexp.Sym("uv"), offset)),
					sexp.Float(weights[i]))))
	}
	body = append(body, sexp.List(sexp.Sym("return"), sexp.Sym("acc")))

	args := append([]sexp.Node{
		sexp.Sym("vec4"), sexp.Sym("gauss-blur"),
		sexp.List(
			sexp.List(sexp.Sym("sampler2D"), sexp.Sym("tex")),
			sexp.List(sexp.Sym("vec2"), sexp.Sym("uv")),
			sexp.List(sexp.Sym("vec2"), sexp.Sym("stride"))),
	}, body...)
	return sexp.List(sexp.Sym("defn"), args...)
}
