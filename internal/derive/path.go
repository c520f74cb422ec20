package derive

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePath parses a derivation path such as "1852'/1815'/0'/2/0" into its
// sequence of indices, folding the hardened offset into any segment with a
// trailing ' or h marker.
func ParsePath(path string) ([]uint32, error) {
	path = strings.TrimPrefix(path, "m/")
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil, nil
	}
	segments := strings.Split(path, "/")
	indices := make([]uint32, 0, len(segments))
	for _, seg := range segments {
		idx, err := parseSegment(seg)
		if err != nil {
			return nil, fmt.Errorf("derive: bad path segment %q: %w", seg, err)
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

func parseSegment(seg string) (uint32, error) {
	hardened := false
	if strings.HasSuffix(seg, "'") || strings.HasSuffix(seg, "h") || strings.HasSuffix(seg, "H") {
		hardened = true
		seg = seg[:len(seg)-1]
	}
	n, err := strconv.ParseUint(seg, 10, 32)
	if err != nil {
		return 0, err
	}
	if uint32(n) >= HardenedOffset {
		return 0, fmt.Errorf("index %d overflows the hardened range", n)
	}
	idx := uint32(n)
	if hardened {
		idx += HardenedOffset
	}
	return idx, nil
}

// StakePath returns the standard CIP-1852 stake key path
// 1852'/1815'/account'/2/0.
func StakePath(account uint32) []uint32 {
	return []uint32{
		1852 + HardenedOffset,
		1815 + HardenedOffset,
		account + HardenedOffset,
		2,
		0,
	}
}
