package las

import (
	"testing"

	"pgregory.net/rapid"
)

func TestLostDimensions(t *testing.T) {
	tests := []struct {
		name string
		src  int
		dst  int
		want []string
	}{
		{
			name: "same format loses nothing",
			src:  3,
			dst:  3,
			want: nil,
		},
		{
			name: "upgrade to superset loses nothing",
			src:  0,
			dst:  1,
			want: nil,
		},
		{
			name: "format 3 to 0 drops gps and color",
			src:  3,
			dst:  0,
			want: []string{"blue", "gps_time", "green", "red"},
		},
		{
			name: "format 1 to 6 drops legacy scan angle",
			src:  1,
			dst:  6,
			want: []string{"scan_angle_rank"},
		},
		{
			name: "format 6 to 1 drops the 1.4 fields",
			src:  6,
			dst:  1,
			want: []string{"overlap", "scan_angle", "scanner_channel"},
		},
		{
			name: "format 8 to 7 drops nir",
			src:  8,
			dst:  7,
			want: []string{"nir"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LostDimensions(tt.src, tt.dst)
			if len(got) != len(tt.want) {
				t.Fatalf("LostDimensions(%d, %d) = %v, want %v", tt.src, tt.dst, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("LostDimensions(%d, %d)[%d] = %q, want %q", tt.src, tt.dst, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLostDimensionsProperties(t *testing.T) {
	formats := SupportedPointFormats()

	rapid.Check(t, func(t *rapid.T) {
		src := rapid.SampledFrom(formats).Draw(t, "src")
		dst := rapid.SampledFrom(formats).Draw(t, "dst")

		lost := LostDimensions(src, dst)

		// Every lost dimension exists in the source and not in the target.
		dstDims := make(map[string]bool)
		for _, d := range Dimensions(dst) {
			dstDims[d] = true
		}
		srcDims := make(map[string]bool)
		for _, d := range Dimensions(src) {
			srcDims[d] = true
		}
		for _, d := range lost {
			if !srcDims[d] {
				t.Fatalf("lost dimension %q is not in source format %d", d, src)
			}
			if dstDims[d] {
				t.Fatalf("lost dimension %q is present in target format %d", d, dst)
			}
		}

		// A target whose dimension set contains the source's loses nothing.
		superset := true
		for _, d := range Dimensions(src) {
			if !dstDims[d] {
				superset = false
				break
			}
		}
		if superset && len(lost) != 0 {
			t.Fatalf("target %d is a superset of %d but loss is %v", dst, src, lost)
		}
		if src == dst && len(lost) != 0 {
			t.Fatalf("identity conversion %d reports loss %v", src, lost)
		}
	})
}

func TestSupportedSets(t *testing.T) {
	formats := SupportedPointFormats()
	if len(formats) != 11 {
		t.Fatalf("expected 11 point formats, got %d", len(formats))
	}
	for _, id := range formats {
		if !IsSupportedPointFormat(id) {
			t.Errorf("format %d listed but not supported", id)
		}
		if RecordLength(id) == 0 {
			t.Errorf("format %d has no record length", id)
		}
		if len(Dimensions(id)) == 0 {
			t.Errorf("format %d has no dimensions", id)
		}
	}
	if IsSupportedPointFormat(11) {
		t.Error("format 11 should not be supported")
	}
	if !IsSupportedVersion(Version{1, 4}) {
		t.Error("version 1.4 should be supported")
	}
	if IsSupportedVersion(Version{2, 0}) {
		t.Error("version 2.0 should not be supported")
	}
}

func TestRecordLengths(t *testing.T) {
	want := map[int]uint16{
		0: 20, 1: 28, 2: 26, 3: 34, 4: 57, 5: 63,
		6: 30, 7: 36, 8: 38, 9: 59, 10: 67,
	}
	for id, n := range want {
		if got := RecordLength(id); got != n {
			t.Errorf("RecordLength(%d) = %d, want %d", id, got, n)
		}
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr bool
	}{
		{in: "1.2", want: Version{1, 2}},
		{in: "1.4", want: Version{1, 4}},
		{in: "14", wantErr: true},
		{in: "one.two", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseVersion(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseVersion(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVersion(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVersion(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
