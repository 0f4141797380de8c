package notation

type stack[E any] []E

func (s *stack[E]) Push(v E) {
	*s = append(*s, v)
}

func (s *stack[E]) Pop() E {
	if len(*s) == 0 {
		panic("pop from empty stack")
	}
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v
}

func (s *stack[E]) Peek() E {
	if len(*s) == 0 {
		panic("peek of empty stack")
	}
	return (*s)[len(*s)-1]
}

func (s *stack[E]) Len() int {
	return len(*s)
}

// snapshot copies the operator stack bottom to top. The result never aliases
// the stack and is never nil.
func snapshot(s stack[rune]) []string {
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = string(r)
	}
	return out
}
