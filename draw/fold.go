package draw

// FoldBitmapTransforms rewrites a finished command sequence so that the scale
// carried by a ConcatTransform immediately preceding a DrawBitmap moves into
// the bitmap's destination rectangle.
//
// Content streams place images on the unit square and size them through the
// current transformation matrix, while the destination draw primitive expects
// explicit pixel dimensions. The pass is a single-lookahead local rewrite: it
// never decomposes general matrices, and a transform not directly followed by
// a bitmap is left untouched.
func FoldBitmapTransforms(cmds []Command) []Command {
	for k := 0; k+1 < len(cmds); k++ {
		if cmds[k].Op != OpConcatTransform || cmds[k+1].Op != OpDrawBitmap {
			continue
		}

		ct := &cmds[k]
		bm := &cmds[k+1]

		w := ct.Matrix[0]
		h := ct.Matrix[3]
		if w == 0 || h == 0 {
			// degenerate scale, leave the pair alone
			continue
		}

		bm.Y = -h
		bm.W = w
		bm.H = h

		ct.Matrix[1] /= w
		ct.Matrix[2] /= h
		ct.Matrix[0] = 1.0
		ct.Matrix[3] = 1.0
	}
	return cmds
}
