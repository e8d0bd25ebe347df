package pixel

// CopyTransformed copies every 4-byte pixel cell from src into dst, applying
// the transform's coordinate mapping. Cells are moved verbatim: channel
// reinterpretation is a separate pass (Normalize). dstW and dstH are the
// destination dimensions, already swapped from the source's for the
// width/height-swapping transforms. Both strides are in bytes and the source
// stride must be at least source-width*4. src and dst must not overlap.
//
// Each case below is mostly copy-and-paste boilerplate; the only interesting
// difference between them is how srcx and srcy are derived. Spelling the
// loops out keeps what is actually going on visible.
func CopyTransformed(dst, src []byte, dstStride, srcStride, dstW, dstH int, tr Transform) {
	if dstW <= 0 || dstH <= 0 {
		return
	}

	minStride := srcStride
	if dstStride < minStride {
		minStride = dstStride
	}

	switch tr {
	case TransformNormal:
		// The common case, doable with one big copy when the strides agree.
		if srcStride == dstStride {
			copy(dst[:dstH*dstStride], src)
			break
		}
		for desty := 0; desty < dstH; desty++ {
			copy(dst[desty*dstStride:desty*dstStride+minStride], src[desty*srcStride:])
		}
	case Transform90:
		for desty := 0; desty < dstH; desty++ {
			srcx := desty
			for destx := 0; destx < dstW; destx++ {
				srcy := dstW - destx - 1
				copyCell(dst, src, desty*dstStride+destx*4, srcy*srcStride+srcx*4)
			}
		}
	case Transform180:
		for desty := 0; desty < dstH; desty++ {
			srcy := dstH - desty - 1
			for destx := 0; destx < dstW; destx++ {
				srcx := dstW - destx - 1
				copyCell(dst, src, desty*dstStride+destx*4, srcy*srcStride+srcx*4)
			}
		}
	case Transform270:
		for desty := 0; desty < dstH; desty++ {
			srcx := dstH - desty - 1
			for destx := 0; destx < dstW; destx++ {
				srcy := destx
				copyCell(dst, src, desty*dstStride+destx*4, srcy*srcStride+srcx*4)
			}
		}
	case TransformFlipped:
		for desty := 0; desty < dstH; desty++ {
			srcy := desty
			for destx := 0; destx < dstW; destx++ {
				srcx := dstW - destx - 1
				copyCell(dst, src, desty*dstStride+destx*4, srcy*srcStride+srcx*4)
			}
		}
	case TransformFlipped90:
		for desty := 0; desty < dstH; desty++ {
			srcx := desty
			for destx := 0; destx < dstW; destx++ {
				srcy := destx
				copyCell(dst, src, desty*dstStride+destx*4, srcy*srcStride+srcx*4)
			}
		}
	case TransformFlipped180:
		for desty := 0; desty < dstH; desty++ {
			srcy := dstH - desty - 1
			copy(dst[desty*dstStride:desty*dstStride+minStride], src[srcy*srcStride:])
		}
	case TransformFlipped270:
		for desty := 0; desty < dstH; desty++ {
			srcx := dstH - desty - 1
			for destx := 0; destx < dstW; destx++ {
				srcy := dstW - destx - 1
				copyCell(dst, src, desty*dstStride+destx*4, srcy*srcStride+srcx*4)
			}
		}
	}
}

func copyCell(dst, src []byte, di, si int) {
	copy(dst[di:di+4], src[si:si+4])
}
