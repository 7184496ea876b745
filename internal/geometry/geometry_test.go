package geometry

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestComputeBoxIoU(t *testing.T) {
	tests := []struct {
		name string
		a, b []Point
		want float64
	}{
		{"identical", Box(0, 0, 2, 2), Box(0, 0, 2, 2), 1.0},
		{"disjoint horizontally", Box(0, 0, 2, 2), Box(5, 0, 7, 2), 0.0},
		{"disjoint vertically", Box(0, 0, 2, 2), Box(0, 5, 2, 7), 0.0},
		{"touching edge", Box(0, 0, 2, 2), Box(2, 0, 4, 2), 0.0},
		{"diagonal overlap", Box(0, 0, 2, 2), Box(1, 1, 3, 3), 1.0 / 7.0},
		{"contained", Box(0, 0, 4, 4), Box(1, 1, 3, 3), 4.0 / 16.0},
		{"half overlap", Box(0, 0, 4, 2), Box(2, 0, 6, 2), 4.0 / 12.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeBoxIoU(tt.a, tt.b)
			if err != nil {
				t.Fatalf("ComputeBoxIoU failed: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ComputeBoxIoU = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeBoxIoU_Symmetric(t *testing.T) {
	boxes := [][]Point{
		Box(0, 0, 2, 2),
		Box(1, 1, 3, 3),
		Box(0.5, 0, 10, 1.5),
		Box(-3, -3, 1, 1),
		Box(20, 20, 30, 30),
	}

	for i, a := range boxes {
		for j, b := range boxes {
			ab, err := ComputeBoxIoU(a, b)
			if err != nil {
				t.Fatalf("IoU(%d,%d) failed: %v", i, j, err)
			}
			ba, err := ComputeBoxIoU(b, a)
			if err != nil {
				t.Fatalf("IoU(%d,%d) failed: %v", j, i, err)
			}
			if ab != ba {
				t.Errorf("IoU(%d,%d)=%v but IoU(%d,%d)=%v", i, j, ab, j, i, ba)
			}
			if ab < 0 || ab > 1 {
				t.Errorf("IoU(%d,%d)=%v outside [0,1]", i, j, ab)
			}
		}
	}
}

func TestComputeBoxIoU_InvalidGeometry(t *testing.T) {
	valid := Box(0, 0, 2, 2)
	three := valid[:3]
	five := append(Box(0, 0, 2, 2), Point{X: 1, Y: 1})

	tests := []struct {
		name string
		a, b []Point
	}{
		{"3 points first", three, valid},
		{"3 points second", valid, three},
		{"5 points first", five, valid},
		{"5 points second", valid, five},
		{"empty", nil, valid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeBoxIoU(tt.a, tt.b)
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("expected ErrInvalidGeometry, got %v", err)
			}
		})
	}
}

func TestBoundingBox(t *testing.T) {
	poly := []Point{{X: 3, Y: 1}, {X: 7, Y: 4}, {X: 2, Y: 9}, {X: 5, Y: 6}}

	box, err := BoundingBox(poly)
	if err != nil {
		t.Fatalf("BoundingBox failed: %v", err)
	}

	want := Box(2, 1, 7, 9)
	for i := range want {
		if box[i] != want[i] {
			t.Errorf("corner %d: got %v, want %v", i, box[i], want[i])
		}
	}

	if _, err := BoundingBox(nil); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry for empty polygon, got %v", err)
	}
}

func TestPoint_JSON(t *testing.T) {
	var pts []Point
	if err := json.Unmarshal([]byte(`[[1, 2], [3.5, 4]]`), &pts); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(pts) != 2 || pts[0] != (Point{1, 2}) || pts[1] != (Point{3.5, 4}) {
		t.Errorf("unexpected points: %v", pts)
	}

	data, err := json.Marshal(Point{X: 5, Y: 6})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "[5,6]" {
		t.Errorf("Marshal = %s, want [5,6]", data)
	}

	var p Point
	if err := json.Unmarshal([]byte(`[1, 2, 3]`), &p); err == nil {
		t.Error("expected error for 3-component point")
	}
	if err := json.Unmarshal([]byte(`{"x": 1}`), &p); err == nil {
		t.Error("expected error for object point")
	}
}
