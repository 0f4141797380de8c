package notation

var examples = []string{
	"A+B*C",
	"(A+B)*C",
	"A+B*C-D/E",
	"(A+B)*(C-D)",
	"A^B^C",
	"((A+B)*C-D)/E",
}

// Examples returns the preset expressions offered to users.
func Examples() []string {
	out := make([]string, len(examples))
	copy(out, examples)
	return out
}
