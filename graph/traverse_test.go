package graph_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtonkinhill/treetime/graph"
)

// continueAll is the trivial explorer: expand everything.
func continueAll(*graph.Edge[string, string]) graph.Verdict { return graph.Continue }

// buildBinaryTree creates a complete binary tree of the given depth
// rooted at key 0; children of key k are 2k+1 and 2k+2.
func buildBinaryTree(depth int) *graph.Graph[string, string] {
	g := graph.New[string, string]()
	total := int64(1<<depth) - 1
	for i := int64(0); i < total; i++ {
		g.AddNode(fmt.Sprintf("p%d", i))
	}
	for i := int64(0); 2*i+2 < total; i++ {
		g.AddEdge(i, 2*i+1, "l")
		g.AddEdge(i, 2*i+2, "r")
	}

	return g
}

// targetKeys projects claimed edges onto their target keys.
func targetKeys(edges []*graph.Edge[string, string]) []int64 {
	keys := make([]int64, 0, len(edges))
	for _, e := range edges {
		keys = append(keys, e.Target().Key())
	}

	return keys
}

func TestBreadthFirstForward_RootMissing(t *testing.T) {
	g := buildPath(3)

	edges, err := g.BreadthFirstForward(42, continueAll)
	assert.Nil(t, edges)
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
}

func TestBreadthFirstForward_NilExplorer(t *testing.T) {
	g := buildPath(3)

	_, err := g.BreadthFirstForward(0, nil)
	assert.ErrorIs(t, err, graph.ErrNilExplorer)
}

func TestBreadthFirstForward_OptionViolation(t *testing.T) {
	g := buildPath(3)

	_, err := g.BreadthFirstForward(0, continueAll, graph.WithWorkers(-2))
	assert.ErrorIs(t, err, graph.ErrOptionViolation)
}

func TestBreadthFirstForward_LeafRoot(t *testing.T) {
	g := buildPath(3)

	edges, err := g.BreadthFirstForward(2, continueAll)
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestBreadthFirstForward_Path(t *testing.T) {
	// 0→1→2→3 with an always-continue explorer: every non-root node is
	// claimed exactly once and ends CLOSED
	g := buildPath(4)

	var mu sync.Mutex
	visits := make(map[int64]int)
	edges, err := g.BreadthFirstForward(0, func(e *graph.Edge[string, string]) graph.Verdict {
		mu.Lock()
		visits[e.Target().Key()]++
		mu.Unlock()
		return graph.Continue
	})
	require.NoError(t, err)
	require.Len(t, edges, 3)

	for _, key := range []int64{1, 2, 3} {
		assert.Equal(t, 1, visits[key], "node %d must be visited exactly once", key)
		n, _ := g.GetNode(key)
		assert.False(t, n.IsOpen(), "node %d must end CLOSED", key)
	}

	// a second walk without reopening discovers nothing
	again, err := g.BreadthFirstForward(0, continueAll)
	require.NoError(t, err)
	assert.Empty(t, again)

	// reopening restores discovery
	g.OpenAll()
	third, err := g.BreadthFirstForward(0, continueAll)
	require.NoError(t, err)
	assert.Len(t, third, 3)
}

func TestBreadthFirstForward_SingleWorkerOrder(t *testing.T) {
	// one worker makes the whole walk sequential and the level order
	// fully deterministic
	g := buildPath(4)

	edges, err := g.BreadthFirstForward(0, continueAll, graph.WithWorkers(1))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, targetKeys(edges))
}

func TestBreadthFirstForward_LevelOrderAcrossWorkers(t *testing.T) {
	// targets of earlier levels always precede targets of later levels,
	// whatever the worker count
	depth := 5
	g := buildBinaryTree(depth)

	edges, err := g.BreadthFirstForward(0, continueAll, graph.WithWorkers(4))
	require.NoError(t, err)
	require.Len(t, edges, 1<<depth-2)

	level := func(key int64) int {
		l := 0
		for key > 0 {
			key = (key - 1) / 2
			l++
		}
		return l
	}
	prev := 0
	for _, key := range targetKeys(edges) {
		assert.GreaterOrEqual(t, level(key), prev, "level order must be preserved")
		if level(key) > prev {
			prev = level(key)
		}
	}
}

func TestBreadthFirstForward_DiamondClaimsOnce(t *testing.T) {
	// 0→1, 0→2, 1→3, 2→3: node 3 is reachable over two edges but must
	// be claimed over exactly one of them
	g := graph.New[string, string]()
	for i := 0; i < 4; i++ {
		g.AddNode(fmt.Sprintf("p%d", i))
	}
	require.True(t, g.AddEdge(0, 1, "a"))
	require.True(t, g.AddEdge(0, 2, "b"))
	require.True(t, g.AddEdge(1, 3, "c"))
	require.True(t, g.AddEdge(2, 3, "d"))

	edges, err := g.BreadthFirstForward(0, func(*graph.Edge[string, string]) graph.Verdict {
		return graph.Continue
	}, graph.WithWorkers(4))
	require.NoError(t, err)
	assert.Len(t, edges, 3, "two level-1 edges plus one winning edge into node 3")

	claimed := make(map[int64]int)
	for _, key := range targetKeys(edges) {
		claimed[key]++
	}
	assert.Equal(t, map[int64]int{1: 1, 2: 1, 3: 1}, claimed)
}

func TestBreadthFirstForward_CycleTerminates(t *testing.T) {
	// 0→1→2→0: the back edge claims the root itself, then the frontier
	// dries up
	g := buildPath(3)
	require.True(t, g.AddEdge(2, 0, "back"))

	edges, err := g.BreadthFirstForward(0, continueAll)
	require.NoError(t, err)
	assert.Len(t, edges, 3)
	for _, key := range []int64{0, 1, 2} {
		n, _ := g.GetNode(key)
		assert.False(t, n.IsOpen())
	}
}

func TestBreadthFirstForward_PruneStopsBranch(t *testing.T) {
	// prune at 0→1 claims node 1 but never reaches node 2
	g := buildPath(3)

	edges, err := g.BreadthFirstForward(0, func(*graph.Edge[string, string]) graph.Verdict {
		return graph.Prune
	})
	require.NoError(t, err)
	assert.Len(t, edges, 1)

	n1, _ := g.GetNode(1)
	n2, _ := g.GetNode(2)
	assert.False(t, n1.IsOpen(), "pruned edge still claims its target")
	assert.True(t, n2.IsOpen(), "nothing past the pruned branch is touched")
}

func TestBreadthFirstForward_HaltDrainsLevel(t *testing.T) {
	// root→a→a2, root→b→b2; halting on one level-1 edge still claims
	// the whole level, but never the grandchildren
	g := graph.New[string, string]()
	root := g.AddNode("root")
	a := g.AddNode("a")
	b := g.AddNode("b")
	a2 := g.AddNode("a2")
	b2 := g.AddNode("b2")
	require.True(t, g.AddEdge(root, a, "e"))
	require.True(t, g.AddEdge(root, b, "e"))
	require.True(t, g.AddEdge(a, a2, "e"))
	require.True(t, g.AddEdge(b, b2, "e"))

	edges, err := g.BreadthFirstForward(root, func(*graph.Edge[string, string]) graph.Verdict {
		return graph.Halt
	})
	require.NoError(t, err)
	assert.Len(t, edges, 2, "the level that signaled Halt finishes in full")

	for _, key := range []int64{a2, b2} {
		n, _ := g.GetNode(key)
		assert.True(t, n.IsOpen(), "grandchildren stay OPEN after Halt")
	}
}

func TestBreadthFirstForward_ClosedNodesInvisible(t *testing.T) {
	// pre-closing a mid-path node fences the walk off from everything
	// behind it
	g := buildPath(4)
	n2, _ := g.GetNode(2)
	n2.Close()

	edges, err := g.BreadthFirstForward(0, continueAll)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, targetKeys(edges))

	n3, _ := g.GetNode(3)
	assert.True(t, n3.IsOpen())
}
