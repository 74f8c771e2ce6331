package orchestrator

import "fmt"

type Step interface {
	Run(*Session) error
}

// Workflow is a graph of steps. Every step has at most one successor for
// success and one for failure; a missing successor ends the run.
type Workflow struct {
	start *Node
	nodes map[Step]*Node
}

func NewWorkflow() *Workflow {
	return &Workflow{nodes: map[Step]*Node{}}
}

func (workflow *Workflow) StartWith(step Step) *Node {
	node := workflow.Add(step)
	workflow.start = node
	return node
}

func (workflow *Workflow) Add(step Step) *Node {
	node := &Node{step: step}
	workflow.nodes[step] = node
	return node
}

// Run walks the graph from the starting node and collects every step error
// on the way. Aggregated step errors are flattened.
func (workflow *Workflow) Run(session *Session) Error {
	var errs Error

	for node := workflow.start; node != nil; {
		next := node.onSuccess
		if err := node.step.Run(session); err != nil {
			errs = append(errs, flatten(err)...)
			next = node.onFailure
		}
		node = workflow.lookup(next)
	}

	return errs
}

func (workflow *Workflow) lookup(step Step) *Node {
	if step == nil {
		return nil
	}
	node, ok := workflow.nodes[step]
	if !ok {
		panic(fmt.Sprintf("workflow has no node for step %T", step))
	}
	return node
}

type Node struct {
	step      Step
	onSuccess Step
	onFailure Step
}

func (node *Node) OnSuccess(step Step) *Node {
	node.onSuccess = step
	return node
}

func (node *Node) OnFailure(step Step) *Node {
	node.onFailure = step
	return node
}

func (node *Node) OnSuccessOrFailure(step Step) *Node {
	return node.OnSuccess(step).OnFailure(step)
}

func flatten(err error) []error {
	if errs, ok := err.(Error); ok {
		return errs
	}
	return []error{err}
}
