package script

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ivlev/animscene/internal/geom"
	"github.com/ivlev/animscene/internal/scene"
)

type fakeLoader struct {
	pictures int
	qrcodes  int
}

func (l *fakeLoader) LoadPicture(source string, page, dpi int) (image.Image, error) {
	l.pictures++
	return image.NewRGBA(image.Rect(0, 0, 4, 3)), nil
}

func (l *fakeLoader) LoadQRCode(content string, size int) (image.Image, error) {
	l.qrcodes++
	return image.NewRGBA(image.Rect(0, 0, size, size)), nil
}

func newScene() *scene.Scene { return scene.New(geom.NewBounds(640, 480)) }

func TestScriptWriteRead(t *testing.T) {
	buffer := 3.0
	sc := &Script{
		Version: "1.0",
		Width:   640,
		Height:  480,
		Objects: []ObjectSpec{
			{Name: "ball", Kind: "circle", Radius: 10, Position: &geom.Point{X: 1, Y: 2}, Fill: "#ff0000"},
		},
		Steps: []Step{
			{Show: []string{"ball"}},
			{Play: &PlaySpec{RunTime: 2, RateFunc: "bounce_out", Actions: []ActionSpec{
				{Target: "ball", Type: "to_edge", Direction: "down", Buffer: &buffer},
			}}},
		},
	}

	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := WriteScript(sc, path); err != nil {
		t.Fatalf("WriteScript failed: %v", err)
	}

	read, err := ReadScript(path)
	if err != nil {
		t.Fatalf("ReadScript failed: %v", err)
	}

	if read.Version != sc.Version {
		t.Errorf("Version mismatch: expected %s, got %s", sc.Version, read.Version)
	}
	if len(read.Objects) != 1 || *read.Objects[0].Position != *sc.Objects[0].Position {
		t.Errorf("Objects mismatch: %+v", read.Objects)
	}
	if len(read.Steps) != 2 || read.Steps[1].Play == nil || *read.Steps[1].Play.Actions[0].Buffer != 3 {
		t.Errorf("Steps mismatch: %+v", read.Steps)
	}
}

func TestBuildPlaysScript(t *testing.T) {
	buffer := 3.0
	sc := &Script{
		Objects: []ObjectSpec{
			{Name: "ball", Kind: "circle", Radius: 10, Position: &geom.Point{X: 40, Y: 10}},
			{Name: "label", Kind: "text", Text: "hi", Visible: true},
		},
		Steps: []Step{
			{Show: []string{"ball"}},
			{Play: &PlaySpec{RunTime: 2, RateFunc: "bounce_out", Actions: []ActionSpec{
				{Target: "ball", Type: "to_edge", Direction: "down", Buffer: &buffer},
				{Target: "label", Type: "set_font_size", Value: 30},
			}}},
			WaitStep(0.5),
			{Act: []ActionSpec{{Target: "label", Type: "move_to", To: &geom.Point{X: 5, Y: 5}}}},
			{Remove: []string{"ball"}},
		},
	}

	s := newScene()
	if err := Build(sc, s, nil); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if s.Duration() != 2.5 {
		t.Errorf("Expected duration 2.5, got %f", s.Duration())
	}

	s.Update(2)
	if s.Len() != 2 {
		t.Fatalf("Expected both objects before removal, got %d", s.Len())
	}
	s.Update(3)
	if s.Len() != 1 {
		t.Errorf("Expected ball removed, got %d objects", s.Len())
	}
}

func TestBuildGlobTargets(t *testing.T) {
	sc := &Script{
		Objects: []ObjectSpec{
			{Name: "dot_1", Kind: "circle"},
			{Name: "dot_2", Kind: "circle"},
			{Name: "box", Kind: "rectangle"},
		},
		Steps: []Step{
			{Play: &PlaySpec{Actions: []ActionSpec{{Target: "dot_*", Type: "show_creation"}}}},
		},
	}
	s := newScene()
	if err := Build(sc, s, nil); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	// sentinel + one play per dot
	if got := s.Timeline().Len(); got != 3 {
		t.Errorf("Expected 3 commands, got %d", got)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		sc   Script
		want error
	}{
		{
			name: "unknown target",
			sc:   Script{Steps: []Step{{Show: []string{"ghost"}}}},
			want: ErrUnknownTarget,
		},
		{
			name: "unknown kind",
			sc:   Script{Objects: []ObjectSpec{{Name: "x", Kind: "hexagon"}}},
			want: ErrUnknownKind,
		},
		{
			name: "unknown action",
			sc: Script{
				Objects: []ObjectSpec{{Name: "x", Kind: "circle"}},
				Steps:   []Step{{Act: []ActionSpec{{Target: "x", Type: "explode"}}}},
			},
			want: ErrUnknownAction,
		},
		{
			name: "kind mismatch",
			sc: Script{
				Objects: []ObjectSpec{{Name: "x", Kind: "rectangle"}},
				Steps:   []Step{{Act: []ActionSpec{{Target: "x", Type: "set_radius", Value: 3}}}},
			},
			want: ErrKindMismatch,
		},
		{
			name: "ambiguous step",
			sc: Script{
				Objects: []ObjectSpec{{Name: "x", Kind: "circle"}},
				Steps:   []Step{{Wait: WaitStep(1).Wait, Show: []string{"x"}}},
			},
			want: ErrInvalidStep,
		},
		{
			name: "negative wait",
			sc:   Script{Steps: []Step{WaitStep(-1)}},
			want: ErrInvalidStep,
		},
		{
			name: "empty step",
			sc:   Script{Steps: []Step{{}}},
			want: ErrInvalidStep,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Build(&tt.sc, newScene(), nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestReadScriptZeroWait(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.yaml")
	data := "version: \"1.0\"\nobjects:\n  - name: x\n    kind: circle\nsteps:\n  - wait: 0\n  - show: [x]\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	sc, err := ReadScript(path)
	if err != nil {
		t.Fatalf("ReadScript failed: %v", err)
	}
	if sc.Steps[0].Wait == nil || *sc.Steps[0].Wait != 0 {
		t.Fatalf("Expected an explicit zero wait, got %+v", sc.Steps[0])
	}
	s := newScene()
	if err := Build(sc, s, nil); err != nil {
		t.Fatalf("Zero wait should build: %v", err)
	}
	if s.Duration() != 0 {
		t.Errorf("Expected duration 0, got %f", s.Duration())
	}
}

func TestScriptVersion(t *testing.T) {
	dir := t.TempDir()

	sc := &Script{Title: "untagged"}
	path := filepath.Join(dir, "untagged.yaml")
	if err := WriteScript(sc, path); err != nil {
		t.Fatal(err)
	}
	if sc.Version != "" {
		t.Error("WriteScript must not modify its argument")
	}
	read, err := ReadScript(path)
	if err != nil || read.Version != Version {
		t.Errorf("Expected version %s, got %+v (%v)", Version, read, err)
	}

	tests := []struct {
		name string
		data string
		want error
	}{
		{"future version", "version: \"2.0\"\n", ErrUnsupportedVersion},
		{"misspelt key", "version: \"1.0\"\nstpes: []\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(p, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := ReadScript(p)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestBuildRejectsBadDirection(t *testing.T) {
	sc := &Script{
		Objects: []ObjectSpec{{Name: "x", Kind: "circle"}},
		Steps: []Step{{Play: &PlaySpec{Actions: []ActionSpec{
			{Target: "x", Type: "to_edge", Direction: "diagonal"},
		}}}},
	}
	if err := Build(sc, newScene(), nil); err == nil {
		t.Error("Expected an error for an invalid direction")
	}
}

func TestBuildPictures(t *testing.T) {
	sc := &Script{
		Objects: []ObjectSpec{
			{Name: "page", Kind: "picture", Source: "deck.pdf", Page: 2},
			{Name: "code", Kind: "picture", QR: "https://example.com", Width: 64},
		},
	}
	load := &fakeLoader{}
	if err := Build(sc, newScene(), load); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if load.pictures != 1 || load.qrcodes != 1 {
		t.Errorf("Expected one picture and one QR code, got %d and %d", load.pictures, load.qrcodes)
	}

	if err := Build(sc, newScene(), nil); err == nil {
		t.Error("Pictures without a loader should fail")
	}
}

func TestGenerateScript(t *testing.T) {
	gen := NewGenerator(640, 480)
	gen.Dots = 20

	sc, err := gen.GenerateScript()
	if err != nil {
		t.Fatalf("GenerateScript failed: %v", err)
	}
	if sc.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", sc.Version)
	}
	if len(sc.Objects) != 23 {
		t.Errorf("Expected 20 dots + 3 shapes, got %d", len(sc.Objects))
	}
	for _, o := range sc.Objects[:20] {
		if o.Position.X < -320 || o.Position.X > 320 || o.Position.Y < -240 || o.Position.Y > 240 {
			t.Errorf("Dot %s outside the frame: %v", o.Name, *o.Position)
		}
	}

	s, err := NewScene(sc, 0, 0, nil)
	if err != nil {
		t.Fatalf("Generated script does not build: %v", err)
	}
	if s.Bounds().Width() != 640 {
		t.Errorf("Expected script width 640, got %f", s.Bounds().Width())
	}
	// wait 1 + create 1 + drop 1 + six single plays
	if s.Duration() != 9 {
		t.Errorf("Expected 9s, got %f", s.Duration())
	}

	again, _ := NewGenerator(640, 480).GenerateScript()
	first, _ := NewGenerator(640, 480).GenerateScript()
	if *again.Objects[5].Position != *first.Objects[5].Position {
		t.Error("Same seed should generate the same script")
	}
}

func TestFindLatestScript(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		filepath.Join(dir, "scene_2026-02-12_10-00-00.yaml"),
		filepath.Join(dir, "scene_2026-02-13_01-00-00.yml"),
		filepath.Join(dir, "scene_2026-02-11_15-30-00.yaml"),
	}
	for i, f := range files {
		if err := os.WriteFile(f, []byte("version: \"1.0\"\n"), 0644); err != nil {
			t.Fatal(err)
		}
		modTime := time.Now().Add(time.Duration(i) * time.Hour)
		os.Chtimes(f, modTime, modTime)
	}
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644)

	latest, err := FindLatestScript(dir)
	if err != nil {
		t.Fatalf("FindLatestScript failed: %v", err)
	}
	if latest != files[len(files)-1] {
		t.Errorf("Expected latest to be %s, got %s", files[len(files)-1], latest)
	}

	if _, err := FindLatestScript(t.TempDir()); err == nil {
		t.Error("Expected an error for an empty directory")
	}
}

func TestGenerateScriptPath(t *testing.T) {
	path := GenerateScriptPath("scripts")
	if filepath.Dir(path) != "scripts" || filepath.Ext(path) != ".yaml" {
		t.Errorf("Unexpected path %s", path)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()

	sc, from, err := Resolve("", dir, 320, 240)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if from != DemoSource || sc.Width != 320 {
		t.Errorf("Expected demo at 320 wide, got %s %d", from, sc.Width)
	}

	path := filepath.Join(dir, "mine.yaml")
	if err := WriteScript(&Script{Version: "1.0", Title: "mine"}, path); err != nil {
		t.Fatal(err)
	}
	sc, from, err = Resolve("", dir, 320, 240)
	if err != nil || from != path || sc.Title != "mine" {
		t.Errorf("Expected %s, got %s (%v)", path, from, err)
	}

	if _, _, err := Resolve(filepath.Join(dir, "missing.yaml"), dir, 320, 240); err == nil {
		t.Error("Expected error for a missing script")
	}
}
