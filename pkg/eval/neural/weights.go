package eval

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	InputSize = 12 * 64

	modelMagic   = "PSNN"
	modelVersion = 1
	maxLayerSize = 1 << 14
	maxLayers    = 16
)

var ErrModelUnavailable = errors.New("model unavailable")

// Layer is a fully connected layer. Weights are stored row-major by output:
// the weight from input i to output o is Weights[o*In+i].
type Layer struct {
	In, Out int
	Weights []float32
	Biases  []float32
}

type Weights struct {
	Layers []Layer
}

// LoadWeights reads a model artifact:
//
//	"PSNN" | version uint32 | layer count uint32
//	per layer: in uint32 | out uint32 | out*in float32 weights | out float32 biases
//
// All numbers are little endian.
func LoadWeights(r io.Reader) (*Weights, error) {
	var br = bufio.NewReader(r)

	var magic [4]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, err
	}
	if string(magic[:]) != modelMagic {
		return nil, fmt.Errorf("bad model magic %q", magic[:])
	}

	var header [2]uint32
	if err := binary.Read(br, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if header[0] != modelVersion {
		return nil, fmt.Errorf("unsupported model version %v", header[0])
	}
	var layerCount = int(header[1])
	if layerCount < 1 || layerCount > maxLayers {
		return nil, fmt.Errorf("bad layer count %v", layerCount)
	}

	var w = &Weights{}
	var prevOut = InputSize
	for i := 0; i < layerCount; i++ {
		var size [2]uint32
		if err := binary.Read(br, binary.LittleEndian, &size); err != nil {
			return nil, err
		}
		var layer = Layer{In: int(size[0]), Out: int(size[1])}
		if layer.In != prevOut {
			return nil, fmt.Errorf("layer %v: input size %v, expected %v", i, layer.In, prevOut)
		}
		if layer.Out < 1 || layer.Out > maxLayerSize {
			return nil, fmt.Errorf("layer %v: bad output size %v", i, layer.Out)
		}
		layer.Weights = make([]float32, layer.In*layer.Out)
		layer.Biases = make([]float32, layer.Out)
		if err := readFloats(br, layer.Weights); err != nil {
			return nil, fmt.Errorf("layer %v weights: %w", i, err)
		}
		if err := readFloats(br, layer.Biases); err != nil {
			return nil, fmt.Errorf("layer %v biases: %w", i, err)
		}
		w.Layers = append(w.Layers, layer)
		prevOut = layer.Out
	}
	if prevOut != 1 {
		return nil, fmt.Errorf("output size %v, expected 1", prevOut)
	}
	return w, nil
}

func readFloats(r io.Reader, dst []float32) error {
	var buf [4]byte
	for i := range dst {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return err
		}
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[:]))
	}
	return nil
}
