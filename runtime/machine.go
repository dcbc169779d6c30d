package runtime

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/peggen/grammar"
)

// Machine holds the state of a single parse run: a cursor over the input, a
// stack of cursor marks for backtracking and a stack of result slots, one per
// open choice.
//
// A Machine is not safe for concurrent use.
type Machine struct {
	input   string
	pos     int
	marks   *arraystack.Stack // of int
	results *arraystack.Stack // of *Node, top is the node under construction
	live    int               // nodes allocated and not yet released
}

// NewMachine creates a machine positioned at the start of input.
func NewMachine(input string) *Machine {
	return &Machine{
		input:   input,
		marks:   arraystack.New(),
		results: arraystack.New(),
	}
}

// Pos returns the byte offset of the cursor.
func (m *Machine) Pos() int {
	return m.pos
}

// Live returns the number of nodes allocated and not released.
func (m *Machine) Live() int {
	return m.live
}

// Depth returns the depth of the result stack.
func (m *Machine) Depth() int {
	return m.results.Size()
}

// NewNode allocates a node.
func (m *Machine) NewNode(data string) *Node {
	m.live++
	return &Node{Data: data}
}

// Purge releases n and its subtree.
func (m *Machine) Purge(n *Node) {
	m.live -= n.Purge()
}

func (m *Machine) mark() {
	m.marks.Push(m.pos)
}

func (m *Machine) unmark() {
	if _, ok := m.marks.Pop(); !ok {
		panic("unbalanced mark stack")
	}
}

func (m *Machine) reset() {
	p, ok := m.marks.Pop()
	if !ok {
		panic("unbalanced mark stack")
	}
	m.pos = p.(int)
}

func (m *Machine) setResult(n *Node) {
	m.results.Pop()
	m.results.Push(n)
}

// --- Matching primitives ---------------------------------------------------

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func (m *Machine) skip() {
	for m.pos < len(m.input) && isSpace(m.input[m.pos]) {
		m.pos++
	}
}

// Literal skips whitespace and matches s verbatim, appending a leaf to n.
// On failure the cursor is restored.
func (m *Machine) Literal(n *Node, s string) bool {
	start := m.pos
	m.skip()
	if !strings.HasPrefix(m.input[m.pos:], s) {
		m.pos = start
		return false
	}
	m.pos += len(s)
	n.Children = append(n.Children, m.NewNode(s))
	return true
}

// Chars skips whitespace and matches a run of at least min and at most max
// runes of class (max < 0 means unbounded). A non-empty run is appended to n as
// a single leaf. If no rune matched, the cursor is restored and Chars succeeds
// only if min is 0.
func (m *Machine) Chars(n *Node, class grammar.CharClass, min, max int) bool {
	start := m.pos
	m.skip()
	from, cnt := m.pos, 0
	for m.pos < len(m.input) && (max < 0 || cnt < max) {
		r, w := utf8.DecodeRuneInString(m.input[m.pos:])
		if !class.Contains(r) {
			break
		}
		m.pos += w
		cnt++
	}
	if cnt == 0 || cnt < min {
		m.pos = start
		return cnt >= min
	}
	n.Children = append(n.Children, m.NewNode(m.input[from:m.pos]))
	return true
}

// Splice moves the children of sub to n and releases sub. It fails if sub is nil.
func (m *Machine) Splice(n, sub *Node) bool {
	if sub == nil {
		return false
	}
	n.Children = append(n.Children, sub.Children...)
	sub.Children = nil
	m.live--
	return true
}

// Choice tries alternatives in order, each on a fresh node, and returns the node
// of the first one succeeding. A failing alternative has its node purged and the
// cursor reset. If every alternative fails, Choice returns nil with the cursor
// unchanged.
//
// base is the depth of the result stack at entry of the enclosing rule, depth is
// the nesting level of this choice within the rule. Choice panics if the result
// stack is out of balance.
func (m *Machine) Choice(base, depth int, alts ...func(*Node) bool) *Node {
	m.results.Push((*Node)(nil))
	var result *Node
	for i, alt := range alts {
		n := m.NewNode("")
		m.setResult(n)
		m.mark()
		if alt(n) {
			m.unmark()
			result = n
			break
		}
		tracer().Debugf("alternative %d failed at %d", i+1, m.pos)
		m.Purge(n)
		m.setResult(nil)
		m.reset()
	}
	m.check(base, depth)
	m.results.Pop()
	return result
}

func (m *Machine) check(base, depth int) {
	if m.results.Size() != base+depth {
		panic(fmt.Sprintf("result stack out of balance: depth is %d, expected %d",
			m.results.Size(), base+depth))
	}
}

// Star splices the results of group into n as long as group matches and
// consumes input.
func (m *Machine) Star(n *Node, group func() *Node) {
	for {
		start := m.pos
		if !m.Splice(n, group()) || m.pos == start {
			return
		}
	}
}

// Plus is like Star, but group has to match at least once.
func (m *Machine) Plus(n *Node, group func() *Node) bool {
	start := m.pos
	if !m.Splice(n, group()) {
		return false
	}
	if m.pos > start {
		m.Star(n, group)
	}
	return true
}
