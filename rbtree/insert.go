package rbtree

// Insert adds z to the tree. z must not already be reachable from
// Root; the caller is responsible for having initialized z's
// Parent/Left/Right to Nil before calling Insert (SetColor is done
// here). There is no equality branch in the descent: a key equal to
// an existing node's key always continues right, so the tree is a
// multiset, never rejecting or merging duplicate sizes.
func (t *Tree) Insert(s Store, z Ref) {
	y := Nil
	x := t.Root
	size := s.Size(z)

	for x != Nil {
		y = x
		if size < s.Size(x) {
			x = s.Left(x)
		} else {
			x = s.Right(x)
		}
	}

	s.SetParent(z, y)
	switch {
	case y == Nil:
		t.Root = z
	case size < s.Size(y):
		s.SetLeft(y, z)
	default:
		s.SetRight(y, z)
	}

	s.SetColor(z, Red)
	t.insertFixup(s, z)
}

func (t *Tree) insertFixup(s Store, z Ref) {
	for z != t.Root && s.Color(s.Parent(z)) == Red {
		gp := s.Parent(s.Parent(z))
		if s.Parent(z) == s.Left(gp) {
			uncle := s.Right(gp)
			if s.Color(uncle) == Red {
				s.SetColor(s.Parent(z), Black)
				s.SetColor(uncle, Black)
				s.SetColor(gp, Red)
				z = gp
			} else {
				if z == s.Right(s.Parent(z)) {
					z = s.Parent(z)
					t.leftRotate(s, z)
				}
				s.SetColor(s.Parent(z), Black)
				s.SetColor(s.Parent(s.Parent(z)), Red)
				t.rightRotate(s, s.Parent(s.Parent(z)))
			}
		} else {
			uncle := s.Left(gp)
			if s.Color(uncle) == Red {
				s.SetColor(s.Parent(z), Black)
				s.SetColor(uncle, Black)
				s.SetColor(gp, Red)
				z = gp
			} else {
				if z == s.Left(s.Parent(z)) {
					z = s.Parent(z)
					t.rightRotate(s, z)
				}
				s.SetColor(s.Parent(z), Black)
				s.SetColor(s.Parent(s.Parent(z)), Red)
				t.leftRotate(s, s.Parent(s.Parent(z)))
			}
		}
	}
	s.SetColor(t.Root, Black)
}
