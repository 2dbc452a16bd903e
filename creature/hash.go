package creature

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"
)

// StateHash fingerprints the full simulation state
// Identically driven creatures produce identical hashes
func (c *Creature) StateHash() uint64 {
	h := xxh3.New()
	buf := make([]byte, 0, 64)

	buf = appendFloats(buf, c.gaitTime, c.bodyHeight)
	buf = appendVec(buf, c.lastMove)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(c.moveCounter))
	_, _ = h.Write(buf)

	for i := range c.segs {
		seg := &c.segs[i]
		buf = appendVec(buf[:0], seg.Pos)
		buf = appendVec(buf, seg.RenderPos)
		buf = appendFloats(buf, seg.Angle)
		_, _ = h.Write(buf)

		for _, v := range seg.Voxels {
			buf = appendVec(buf[:0], v.Pos)
			buf = appendVec(buf, v.Vel)
			_, _ = h.Write(buf)
		}
		for _, leg := range seg.Legs {
			buf = appendFloats(buf[:0], leg.Yaw, leg.HipPitch, leg.Knee, leg.SwingPhase)
			buf = appendVec(buf, leg.FootHold)
			if leg.OnGround {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
			_, _ = h.Write(buf)
		}
	}
	return h.Sum64()
}

func appendFloats(b []byte, fs ...float32) []byte {
	for _, f := range fs {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
	}
	return b
}

func appendVec(b []byte, v mgl32.Vec2) []byte {
	return appendFloats(b, v[0], v[1])
}
