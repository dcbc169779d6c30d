/*
Package runtime implements the runtime of PEG parsers built by peggen:
tree nodes, a matching machine with mark and result stacks, and an
interpreter executing a grammar directly.

Parsers generated by package generator carry their own copy of this runtime,
specialized and without imports. The interpreter has exactly the same
semantics. It is used to try out grammars without generating code first.

Trees

A rule produces a node labeled with the rule's name. Literals and charset runs
produce leaves labeled with the text they matched. References and groups do not
produce nodes of their own: the children of the node they return are spliced
into the enclosing node.

Purge on Fail

A node built by a failing alternative is purged, i.e. all of its children are
released, before the next alternative is tried. The machine counts the nodes
which are currently allocated; after a parse this count is equal to the size of
the tree returned.


----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package runtime

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'peggen.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("peggen.runtime")
}

// Node is a node of a parse tree. Data is a rule name for inner nodes and the
// matched text for leaves. A node exclusively owns its children.
type Node struct {
	Data     string
	Children []*Node
}

// Purge releases all children of n, recursively. It returns the number of
// nodes released, including n.
func (n *Node) Purge() int {
	if n == nil {
		return 0
	}
	cnt := 1
	for _, ch := range n.Children {
		cnt += ch.Purge()
	}
	n.Children = nil
	return cnt
}

// Size counts the nodes of the tree rooted at n.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	cnt := 1
	for _, ch := range n.Children {
		cnt += ch.Size()
	}
	return cnt
}

// Equal is true if n and other are structurally equal trees.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Data != other.Data || len(n.Children) != len(other.Children) {
		return false
	}
	for i, ch := range n.Children {
		if !ch.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// Leaves returns the labels of the leaves of the tree, in order.
func (n *Node) Leaves() []string {
	var leaves []string
	var collect func(*Node)
	collect = func(n *Node) {
		if len(n.Children) == 0 {
			leaves = append(leaves, n.Data)
			return
		}
		for _, ch := range n.Children {
			collect(ch)
		}
	}
	if n != nil {
		collect(n)
	}
	return leaves
}

// String renders a tree as an s-expression. Leaves are quoted.
//
//    (Sum "1" "+" (Product "2"))
//
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if len(n.Children) == 0 {
		b.WriteString(strconv.Quote(n.Data))
		return
	}
	b.WriteByte('(')
	b.WriteString(n.Data)
	for _, ch := range n.Children {
		b.WriteByte(' ')
		ch.write(b)
	}
	b.WriteByte(')')
}
