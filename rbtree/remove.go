package rbtree

// transplant replaces the subtree rooted at u with the subtree rooted
// at v, fixing up u's parent's child slot (or Root) and writing v's
// parent unconditionally — even when v is Nil. That unconditional
// write is what lets removeFixup later read Nil's Parent as if it
// were x's real parent; skipping it for v == Nil would be a
// correctness bug, not just a wasted write.
func (t *Tree) transplant(s Store, u, v Ref) {
	switch {
	case s.Parent(u) == Nil:
		t.Root = v
	case u == s.Left(s.Parent(u)):
		s.SetLeft(s.Parent(u), v)
	default:
		s.SetRight(s.Parent(u), v)
	}
	s.SetParent(v, s.Parent(u))
}

func minimum(s Store, x Ref) Ref {
	for s.Left(x) != Nil {
		x = s.Left(x)
	}
	return x
}

// Remove deletes z from the tree. z must currently be reachable from
// Root.
func (t *Tree) Remove(s Store, z Ref) {
	y := z
	yColor := s.Color(y)
	var x Ref

	switch {
	case s.Left(z) == Nil:
		x = s.Right(z)
		t.transplant(s, z, s.Right(z))
	case s.Right(z) == Nil:
		x = s.Left(z)
		t.transplant(s, z, s.Left(z))
	default:
		y = minimum(s, s.Right(z))
		yColor = s.Color(y)
		x = s.Right(y)
		if s.Parent(y) == z {
			s.SetParent(x, y)
		} else {
			t.transplant(s, y, s.Right(y))
			s.SetRight(y, s.Right(z))
			s.SetParent(s.Right(y), y)
		}
		t.transplant(s, z, y)
		s.SetLeft(y, s.Left(z))
		s.SetParent(s.Left(y), y)
		s.SetColor(y, s.Color(z))
	}

	if yColor == Black {
		t.removeFixup(s, x)
	}
}

func (t *Tree) removeFixup(s Store, x Ref) {
	for x != t.Root && s.Color(x) == Black {
		if x == s.Left(s.Parent(x)) {
			w := s.Right(s.Parent(x))
			if s.Color(w) == Red {
				s.SetColor(w, Black)
				s.SetColor(s.Parent(x), Red)
				t.leftRotate(s, s.Parent(x))
				w = s.Right(s.Parent(x))
			}
			if s.Color(s.Left(w)) == Black && s.Color(s.Right(w)) == Black {
				s.SetColor(w, Red)
				x = s.Parent(x)
			} else {
				if s.Color(s.Right(w)) == Black {
					s.SetColor(s.Left(w), Black)
					s.SetColor(w, Red)
					t.rightRotate(s, w)
					w = s.Right(s.Parent(x))
				}
				s.SetColor(w, s.Color(s.Parent(x)))
				s.SetColor(s.Parent(x), Black)
				s.SetColor(s.Right(w), Black)
				t.leftRotate(s, s.Parent(x))
				x = t.Root
			}
		} else {
			w := s.Left(s.Parent(x))
			if s.Color(w) == Red {
				s.SetColor(w, Black)
				s.SetColor(s.Parent(x), Red)
				t.rightRotate(s, s.Parent(x))
				w = s.Left(s.Parent(x))
			}
			if s.Color(s.Right(w)) == Black && s.Color(s.Left(w)) == Black {
				s.SetColor(w, Red)
				x = s.Parent(x)
			} else {
				if s.Color(s.Left(w)) == Black {
					s.SetColor(s.Right(w), Black)
					s.SetColor(w, Red)
					t.leftRotate(s, w)
					w = s.Left(s.Parent(x))
				}
				s.SetColor(w, s.Color(s.Parent(x)))
				s.SetColor(s.Parent(x), Black)
				s.SetColor(s.Left(w), Black)
				t.rightRotate(s, s.Parent(x))
				x = t.Root
			}
		}
	}
	s.SetColor(x, Black)
}
