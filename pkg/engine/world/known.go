package world

// ObserveSquare copies what the player can see at loc from cave into known:
// the terrain, visible traps, and a known copy of every floor object.
// Each known copy is listed in known at its real object's index.
func ObserveSquare(cave, known *Chunk, loc Loc) {
	sq := cave.Square(loc)
	ksq := known.Square(loc)
	if sq == nil || ksq == nil {
		return
	}

	known.SetFeat(loc, sq.Feat)
	ksq.Info |= SquareMark
	if sq.Trap.anyVisible() {
		ksq.Info |= SquareTrap
	} else {
		ksq.Info &^= SquareTrap
	}

	// Known objects whose real object has left the square are no longer here
	for _, kobj := range ksq.Obj.Objects() {
		obj := cave.Object(kobj.OIdx)
		if obj == nil || obj.Known != kobj || obj.Grid != loc {
			ksq.Obj.Excise(kobj)
			kobj.Grid = Loc{}
		}
	}

	sq.Obj.Each(func(obj *Object) {
		observeObject(known, obj)
	})
	if ksq.Obj.Len() == 0 {
		ksq.Obj = nil
	}
}

// observeObject creates or refreshes the known copy of a listed floor object
func observeObject(known *Chunk, obj *Object) {
	if obj.OIdx == 0 || obj.OIdx >= len(known.objects) {
		return
	}

	kobj := obj.Known
	if kobj == nil {
		kobj = obj.knownCopy()
		obj.Known = kobj
		known.objects[obj.OIdx] = kobj
	}
	kobj.Number = obj.Number

	if kobj.Grid != obj.Grid {
		if !kobj.Grid.IsZero() {
			known.Pile(kobj.Grid).Excise(kobj)
		}
		kobj.Grid = obj.Grid
	}
	ksq := known.Square(obj.Grid)
	if ksq.Obj == nil {
		ksq.Obj = NewPile()
	}
	ksq.Obj.Insert(kobj)
}

// ForgetObject removes the player's copy of obj from known. The real object
// can be delisted from the active level once its copy is gone.
func ForgetObject(known *Chunk, obj *Object) error {
	kobj := obj.Known
	if kobj == nil {
		return nil
	}
	if !kobj.Grid.IsZero() {
		if ksq := known.Square(kobj.Grid); ksq != nil {
			ksq.Obj.Excise(kobj)
			if ksq.Obj.Len() == 0 {
				ksq.Obj = nil
			}
		}
		kobj.Grid = Loc{}
	}
	if err := known.DelistObject(kobj, nil); err != nil {
		return err
	}
	obj.Known = nil
	return nil
}
