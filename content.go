package main

import (
	"fmt"
	"strings"
)

// The four worked solutions under evaluation. Display content is set once
// here and never mutated; only Pos and Comment change at runtime.
//
// Exercise: solve 2*sin(x)^2 - sin(x) - 1 = 0 on [0, 2*pi).

func seedCards() []Card {
	return []Card{
		{
			ID:      1,
			Badge:   "P1",
			Title:   "Factoring the quadratic",
			Summary: "Substitutes t = sin(x) and factors the quadratic directly.",
			Steps: []string{
				"Let $t = \\sin x$, so the equation becomes $2t^2 - t - 1 = 0$.",
				"Factor: $2t^2 - t - 1 = (2t + 1)(t - 1)$.",
				"So $t = -\\tfrac{1}{2}$ or $t = 1$.",
				"$\\sin x = 1$ gives $x = \\tfrac{\\pi}{2}$.",
				"$\\sin x = -\\tfrac{1}{2}$ gives $x = \\tfrac{7\\pi}{6}$ and $x = \\tfrac{11\\pi}{6}$.",
				"Solution set: $\\{\\tfrac{\\pi}{2}, \\tfrac{7\\pi}{6}, \\tfrac{11\\pi}{6}\\}$.",
			},
		},
		{
			ID:      2,
			Badge:   "P2",
			Title:   "Quadratic formula",
			Summary: "Applies the quadratic formula to the substituted equation.",
			Steps: []string{
				"With $t = \\sin x$: $2t^2 - t - 1 = 0$, $a = 2$, $b = -1$, $c = -1$.",
				"Discriminant: $b^2 - 4ac = 1 + 8 = 9$.",
				"$t = \\dfrac{1 \\pm 3}{4}$, so $t = 1$ or $t = -\\tfrac{1}{2}$.",
				"$\\sin x = 1 \\Rightarrow x = \\tfrac{\\pi}{2}$ (the sine reaches 1 once per period).",
				"$\\sin x = -\\tfrac{1}{2} \\Rightarrow x \\in \\{\\pi + \\tfrac{\\pi}{6},\\ 2\\pi - \\tfrac{\\pi}{6}\\}$.",
				"All solutions on $[0, 2\\pi)$: $\\tfrac{\\pi}{2}$, $\\tfrac{7\\pi}{6}$, $\\tfrac{11\\pi}{6}$.",
			},
		},
		{
			ID:      3,
			Badge:   "P3",
			Title:   "Unit-circle reading",
			Summary: "Solves by inspecting the unit circle, skipping the algebraic check.",
			Steps: []string{
				"Guess from the circle: $\\sin x = 1$ at the top, $x = \\tfrac{\\pi}{2}$.",
				"Try $\\sin x = -\\tfrac{1}{2}$: third and fourth quadrant, reference angle $\\tfrac{\\pi}{6}$.",
				"Read off $x = \\tfrac{7\\pi}{6}$ and $x = \\tfrac{11\\pi}{6}$.",
				"Check one value: $2(\\tfrac{1}{4}) + \\tfrac{1}{2} - 1 = 0$. Works.",
				"(No argument that these are the only roots of the quadratic.)",
			},
		},
		{
			ID:      4,
			Badge:   "P4",
			Title:   "Graphical intersection",
			Summary: "Intersects y = 2sin^2(x) with y = sin(x) + 1 graphically, then verifies.",
			Steps: []string{
				"Rewrite as $2\\sin^2 x = \\sin x + 1$ and plot both sides on $[0, 2\\pi)$.",
				"The curves cross three times; estimated abscissas $1.57$, $3.67$, $5.76$.",
				"Identify the exact values $\\tfrac{\\pi}{2}$, $\\tfrac{7\\pi}{6}$, $\\tfrac{11\\pi}{6}$.",
				"Verify each by substitution into $2\\sin^2 x - \\sin x - 1$.",
				"All three vanish, and the graphs show no further crossings.",
			},
		},
	}
}

// cardBody renders a card's content as markdown for the magnified overlay.
// Formula markup stays in $...$ delimiters for the typesetting pass.
func cardBody(c *Card) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s — %s\n\n%s\n\n", c.Badge, c.Title, c.Summary)
	for i, step := range c.Steps {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
	}
	return sb.String()
}
