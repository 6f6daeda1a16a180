package main

import (
	"fmt"
	"os"

	"github.com/gerred/penumbra"
)

const textureShader = `
; Textured surface modulated by a tint, brightness driven by the library.
(declare (attribute (vec3 position)))
(declare (attribute (vec2 tex-coord)))
(declare (varying (vec2 uv)))
(declare (uniform (mat4 mvp)))
(declare (uniform (sampler2D tex)))
(declare (uniform (vec4 tint)))

(import (shaderlib saturate))

(set! uv tex-coord)
(set! :position (* mvp (vec4 position 1.0)))

(let [(vec4 texel) (* (texture2D tex uv) tint)]
  (set! :frag-color (vec4 (.rgb texel) (saturate (.a texel)))))
`

func main() {
	// Parse to forms
	forms, err := penumbra.Parse(textureShader)
	if err != nil {
		fmt.Println("Parse error:", err)
		os.Exit(1)
	}

	// Split shared declarations from the body
	decls, body := penumbra.SplitDeclarations(forms)

	fmt.Println("=== Forms ===")
	fmt.Printf("Declarations: %d\n", len(decls))
	fmt.Printf("Body: %d\n", len(body))

	for i, decl := range decls {
		fmt.Printf("  Decl[%d]: %s\n", i, decl)
	}

	// Compile both stages from the same forms
	opts := penumbra.DefaultOptions()

	vertex, err := penumbra.CompileVertexSource(decls, body, opts)
	if err != nil {
		fmt.Println("Vertex compile error:", err)
		os.Exit(1)
	}

	fragment, err := penumbra.CompileFragmentSource(decls, body, opts)
	if err != nil {
		fmt.Println("Fragment compile error:", err)
		os.Exit(1)
	}

	fmt.Printf("\n=== GLSL ===\n")
	fmt.Printf("Vertex: %d bytes\n", len(vertex))
	fmt.Printf("Fragment: %d bytes\n", len(fragment))

	// Save to files
	if err := os.WriteFile("texture.vert", []byte(vertex), 0600); err != nil {
		fmt.Println("Write error:", err)
		os.Exit(1)
	}
	if err := os.WriteFile("texture.frag", []byte(fragment), 0600); err != nil {
		fmt.Println("Write error:", err)
		os.Exit(1)
	}
	fmt.Println("Saved to texture.vert and texture.frag")
}
