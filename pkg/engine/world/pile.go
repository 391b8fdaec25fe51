package world

import (
	"github.com/zyedidia/generic/list"
)

// Pile is an ordered stack of objects sharing a square (or a monster's pack).
// A nil *Pile is a valid empty pile for all read operations.
type Pile struct {
	objs *list.List[*Object]
	n    int
}

// NewPile creates an empty pile
func NewPile() *Pile {
	return &Pile{objs: list.New[*Object]()}
}

// Insert puts obj on top of the pile
func (p *Pile) Insert(obj *Object) {
	if obj == nil || p.Contains(obj) {
		return
	}
	p.objs.PushFront(obj)
	p.n++
}

// InsertEnd puts obj at the bottom of the pile
func (p *Pile) InsertEnd(obj *Object) {
	if obj == nil || p.Contains(obj) {
		return
	}
	p.objs.PushBack(obj)
	p.n++
}

// Excise removes obj from the pile, returning false if it was not there
func (p *Pile) Excise(obj *Object) bool {
	node := p.find(obj)
	if node == nil {
		return false
	}
	p.objs.Remove(node)
	p.n--
	return true
}

// Contains reports whether obj is in the pile
func (p *Pile) Contains(obj *Object) bool {
	return p.find(obj) != nil
}

func (p *Pile) find(obj *Object) *list.Node[*Object] {
	if p == nil || obj == nil {
		return nil
	}
	for node := p.objs.Front; node != nil; node = node.Next {
		if node.Value == obj {
			return node
		}
	}
	return nil
}

// Len returns the number of objects in the pile
func (p *Pile) Len() int {
	if p == nil {
		return 0
	}
	return p.n
}

// Top returns the topmost object, or nil
func (p *Pile) Top() *Object {
	if p == nil || p.objs.Front == nil {
		return nil
	}
	return p.objs.Front.Value
}

// Each calls fn for every object from top to bottom.
// fn must not modify the pile; use Objects for that.
func (p *Pile) Each(fn func(obj *Object)) {
	if p == nil {
		return
	}
	for node := p.objs.Front; node != nil; node = node.Next {
		fn(node.Value)
	}
}

// Objects returns a snapshot of the pile from top to bottom
func (p *Pile) Objects() []*Object {
	out := make([]*Object, 0, p.Len())
	p.Each(func(obj *Object) {
		out = append(out, obj)
	})
	return out
}

// free detaches every object from the pile and the map
func (p *Pile) free() {
	if p == nil {
		return
	}
	for node := p.objs.Front; node != nil; node = node.Next {
		obj := node.Value
		obj.Grid = Loc{}
		obj.OIdx = 0
		obj.HeldMIdx = 0
		obj.Known = nil
	}
	p.objs = list.New[*Object]()
	p.n = 0
}
