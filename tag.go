package rbheap

// Word sizes, matching the block layout: every size is a multiple of
// dSize, and header/footer words are wSize bytes wide.
const (
	wSize = 4  // W: header/footer word width
	dSize = 8  // D: alignment unit and tree-node field width
	minBlock = 6 * dSize // MIN: smallest legal block, fits the node overlay
	chunkWords = 4096 / wSize // default extend() granularity, in words
)

const allocBit uint32 = 0x1
const sizeMask uint32 = ^uint32(0x7)

// packTag combines a block size and an allocated flag into the word
// written to both a block's header and its footer.
func packTag(size uint32, allocated bool) uint32 {
	if allocated {
		return size | allocBit
	}
	return size
}

func unpackSize(word uint32) uint32 { return word & sizeMask }
func unpackAlloc(word uint32) bool  { return word&allocBit != 0 }
