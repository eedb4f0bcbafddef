package huffman

import (
	"fmt"
	"sort"

	"github.com/cocosip/go-jfif/jpeg/common"
)

// Frequencies is a symbol histogram
type Frequencies [256]uint64

// reservedSymbol takes the all-ones code while the tree is built and is dropped afterwards
const reservedSymbol = 256

// node is an arena entry. Leaves have left == right == -1.
type node struct {
	freq  uint64
	sym   int
	left  int
	right int
}

// tree is a Huffman tree stored in a flat arena; the root is the last node
type tree struct {
	nodes []node
}

// buildTree inserts a leaf for every symbol with a nonzero count, in ascending
// symbol order, then repeatedly merges the two lowest-frequency live nodes.
// Ties go to the lower arena index, so earlier insertions merge first.
func buildTree(freq []uint64) *tree {
	t := &tree{}
	live := make([]int, 0, len(freq))
	for sym, f := range freq {
		if f == 0 {
			continue
		}
		live = append(live, len(t.nodes))
		t.nodes = append(t.nodes, node{freq: f, sym: sym, left: -1, right: -1})
	}
	if len(live) == 0 {
		return t
	}

	for len(live) > 1 {
		a := t.popMin(&live)
		b := t.popMin(&live)
		live = append(live, len(t.nodes))
		t.nodes = append(t.nodes, node{
			freq:  t.nodes[a].freq + t.nodes[b].freq,
			sym:   -1,
			left:  a,
			right: b,
		})
	}
	return t
}

// popMin removes the live node with the smallest frequency, lowest arena index on ties
func (t *tree) popMin(live *[]int) int {
	l := *live
	best := 0
	for i := 1; i < len(l); i++ {
		ni, nb := t.nodes[l[i]], t.nodes[l[best]]
		if ni.freq < nb.freq || (ni.freq == nb.freq && l[i] < l[best]) {
			best = i
		}
	}
	idx := l[best]
	*live = append(l[:best], l[best+1:]...)
	return idx
}

// walk visits every leaf depth first, left subtree before right, and reports
// the path to it (left edge 0, right edge 1)
func (t *tree) walk(visit func(sym int, code Code)) {
	if len(t.nodes) == 0 {
		return
	}

	type frame struct {
		idx  int
		code Code
	}
	root := len(t.nodes) - 1
	if t.nodes[root].left < 0 {
		// a lone symbol still needs one bit
		visit(t.nodes[root].sym, Code{Bits: 0, Len: 1})
		return
	}

	stack := []frame{{idx: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[f.idx]
		if n.left < 0 {
			visit(n.sym, f.code)
			continue
		}
		// push right first so the left subtree is visited first
		stack = append(stack,
			frame{idx: n.right, code: Code{Bits: f.code.Bits<<1 | 1, Len: f.code.Len + 1}},
			frame{idx: n.left, code: Code{Bits: f.code.Bits << 1, Len: f.code.Len + 1}},
		)
	}
}

// CodeLengths returns the Huffman code length of every symbol with a nonzero count.
// Lengths are unbounded; Build limits them for use in a DHT segment.
func CodeLengths(freq *Frequencies) [256]int {
	var lengths [256]int
	buildTree(freq[:]).walk(func(sym int, code Code) {
		lengths[sym] = code.Len
	})
	return lengths
}

// treeCodes returns the codes read off the Huffman tree in traversal order.
// Their lengths match CodeLengths; Build canonicalizes them for the bitstream.
func treeCodes(freq *Frequencies) map[byte]Code {
	codes := make(map[byte]Code)
	buildTree(freq[:]).walk(func(sym int, code Code) {
		codes[byte(sym)] = code
	})
	return codes
}

// Build derives a table from a histogram. The result is limited to 16-bit codes
// and no symbol is assigned the all-ones code.
func Build(name string, freq *Frequencies) (TableSpec, error) {
	spec := TableSpec{Name: name}

	counts := make([]uint64, reservedSymbol+1)
	used := 0
	for sym, f := range freq {
		counts[sym] = f
		if f > 0 {
			used++
		}
	}
	if used == 0 {
		return spec, fmt.Errorf("%s: %w: no symbols to code", name, common.ErrInvalidHuffmanTable)
	}
	counts[reservedSymbol] = 1

	var lengths [reservedSymbol + 1]int
	maxLen := 0
	buildTree(counts).walk(func(sym int, code Code) {
		lengths[sym] = code.Len
		if code.Len > maxLen {
			maxLen = code.Len
		}
	})

	bits := make([]int, maxLen+1)
	for _, l := range lengths {
		if l > 0 {
			bits[l]++
		}
	}
	bits = limitLengths(bits)

	// drop the reserved code, which is the last code of the longest length
	longest := len(bits) - 1
	for bits[longest] == 0 {
		longest--
	}
	bits[longest]--

	symbols := make([]int, 0, used)
	for sym := 0; sym < 256; sym++ {
		if lengths[sym] > 0 {
			symbols = append(symbols, sym)
		}
	}
	sort.SliceStable(symbols, func(i, j int) bool {
		return lengths[symbols[i]] < lengths[symbols[j]]
	})

	spec.Values = make([]byte, len(symbols))
	for i, sym := range symbols {
		spec.Values[i] = byte(sym)
	}
	for l := 1; l < len(bits) && l <= MaxCodeLength; l++ {
		spec.Bits[l-1] = bits[l]
	}
	return spec, nil
}

// limitLengths folds code lengths above 16 bits into shorter ones (T.81 Annex K.3,
// Adjust_BITS). bits[l] is the number of codes of length l.
func limitLengths(bits []int) []int {
	if len(bits) <= MaxCodeLength+1 {
		out := make([]int, MaxCodeLength+1)
		copy(out, bits)
		return out
	}

	for i := len(bits) - 1; i > MaxCodeLength; i-- {
		for bits[i] > 0 {
			j := i - 2
			for bits[j] == 0 {
				j--
			}
			bits[i] -= 2
			bits[i-1]++
			bits[j+1] += 2
			bits[j]--
		}
	}
	return bits[:MaxCodeLength+1]
}
