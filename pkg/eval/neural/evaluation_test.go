package eval

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	. "github.com/pawnstorm/pawnstorm/pkg/common"
)

func writeWeights(t *testing.T, w *Weights) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString(modelMagic)
	var write = func(data interface{}) {
		if err := binary.Write(&buf, binary.LittleEndian, data); err != nil {
			t.Fatal(err)
		}
	}
	write([2]uint32{modelVersion, uint32(len(w.Layers))})
	for _, layer := range w.Layers {
		write([2]uint32{uint32(layer.In), uint32(layer.Out)})
		write(layer.Weights)
		write(layer.Biases)
	}
	return buf.Bytes()
}

func randomWeights(sizes []int, seed int64) *Weights {
	var r = rand.New(rand.NewSource(seed))
	var w = &Weights{}
	for i := 1; i < len(sizes); i++ {
		var layer = Layer{In: sizes[i-1], Out: sizes[i]}
		layer.Weights = make([]float32, layer.In*layer.Out)
		layer.Biases = make([]float32, layer.Out)
		for j := range layer.Weights {
			layer.Weights[j] = float32(r.NormFloat64() * 0.05)
		}
		for j := range layer.Biases {
			layer.Biases[j] = float32(r.NormFloat64() * 0.01)
		}
		w.Layers = append(w.Layers, layer)
	}
	return w
}

func TestLoadWeights(t *testing.T) {
	var w = randomWeights([]int{InputSize, 32, 16, 1}, 1)
	var loaded, err = LoadWeights(bytes.NewReader(writeWeights(t, w)))
	if err != nil {
		t.Fatal(err)
	}
	var p = NewPosition()
	var want = NewEvaluationService(w).Evaluate(&p)
	var got = NewEvaluationService(loaded).Evaluate(&p)
	if got != want {
		t.Error(got, want)
	}
}

func TestLoadWeightsErrors(t *testing.T) {
	var valid = writeWeights(t, randomWeights([]int{InputSize, 8, 1}, 2))
	var badMagic = append([]byte("XXXX"), valid[4:]...)
	var wrongInput = writeWeights(t, randomWeights([]int{100, 8, 1}, 3))
	var wrongOutput = writeWeights(t, randomWeights([]int{InputSize, 8, 2}, 4))
	var tests = map[string][]byte{
		"empty":        nil,
		"bad magic":    badMagic,
		"truncated":    valid[:len(valid)-3],
		"wrong input":  wrongInput,
		"wrong output": wrongOutput,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadWeights(bytes.NewReader(data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	if _, _, err := LoadFile(filepath.Join(t.TempDir(), "missing.nn")); !errors.Is(err, ErrModelUnavailable) {
		t.Error(err)
	}
	if _, _, err := LoadFile(""); !errors.Is(err, ErrModelUnavailable) {
		t.Error(err)
	}

	var path = filepath.Join(t.TempDir(), "model.nn")
	if err := os.WriteFile(path, []byte("PSNN garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadFile(path); !errors.Is(err, ErrModelUnavailable) {
		t.Error(err)
	}

	if err := os.WriteFile(path, writeWeights(t, randomWeights([]int{InputSize, 4, 1}, 5)), 0o644); err != nil {
		t.Fatal(err)
	}
	var w, resolved, err = LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if resolved != path || len(w.Layers) != 2 {
		t.Error(resolved, len(w.Layers))
	}
}

func TestEvaluateSingleFeature(t *testing.T) {
	var layer = Layer{In: InputSize, Out: 1,
		Weights: make([]float32, InputSize), Biases: make([]float32, 1)}
	layer.Weights[inputIndex(true, Queen, SquareD1)] = 0.5
	layer.Weights[inputIndex(false, Queen, SquareD8)] = -0.25
	var e = NewEvaluationService(&Weights{Layers: []Layer{layer}})
	var p = NewPosition()
	var want = int(math.Round(math.Tanh(0.25) * 1000))
	if got := e.Evaluate(&p); got != want {
		t.Error(got, want)
	}
}

func TestEvaluateRange(t *testing.T) {
	var e = NewEvaluationService(randomWeights([]int{InputSize, 64, 32, 1}, 6))
	for _, fen := range []string{
		InitialPositionFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	} {
		var p, _ = NewPositionFromFEN(fen)
		if score := e.Evaluate(&p); score < -outputScale || score > outputScale {
			t.Error(fen, score)
		}
	}
}
