package script

import (
	"errors"
	"fmt"
	"image"
	"path"
	"strings"

	"github.com/ivlev/animscene/internal/action"
	"github.com/ivlev/animscene/internal/animation"
	"github.com/ivlev/animscene/internal/easing"
	"github.com/ivlev/animscene/internal/geom"
	"github.com/ivlev/animscene/internal/object"
	"github.com/ivlev/animscene/internal/scene"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrUnknownTarget = errors.New("unknown target")
	ErrUnknownKind   = errors.New("unknown object kind")
	ErrUnknownAction = errors.New("unknown action type")
	ErrKindMismatch  = errors.New("action does not apply to object kind")
	ErrInvalidStep   = errors.New("step must set exactly one of wait, show, remove, act, play")
)

// Loader resolves picture objects to images.
type Loader interface {
	LoadPicture(source string, page, dpi int) (image.Image, error)
	LoadQRCode(content string, size int) (image.Image, error)
}

type entry struct {
	name string
	kind object.Kind
	ref  scene.Mobject
}

type builder struct {
	scene   *scene.Scene
	objects []entry
	byName  map[string]int
}

// Bounds returns the scene edges for the script's frame size, falling back
// to width x height when the script leaves them unset.
func (sc *Script) Bounds(width, height int) geom.Bounds {
	if sc.Width > 0 {
		width = sc.Width
	}
	if sc.Height > 0 {
		height = sc.Height
	}
	return geom.NewBounds(float64(width), float64(height))
}

// NewScene creates a scene sized by Bounds and builds the script into it.
func NewScene(sc *Script, width, height int, load Loader) (*scene.Scene, error) {
	s := scene.New(sc.Bounds(width, height))
	if err := Build(sc, s, load); err != nil {
		return nil, err
	}
	return s, nil
}

// Build adds the script's objects to s and appends its steps to the
// timeline. load may be nil when the script has no pictures.
func Build(sc *Script, s *scene.Scene, load Loader) error {
	b := &builder{scene: s, byName: make(map[string]int, len(sc.Objects))}

	for i, spec := range sc.Objects {
		if err := b.addObject(spec, load); err != nil {
			return fmt.Errorf("object %d (%s): %w", i, spec.Name, err)
		}
	}
	for i, spec := range sc.Objects {
		if spec.Parent == "" {
			continue
		}
		p, ok := b.byName[spec.Parent]
		if !ok {
			return fmt.Errorf("object %s parent %q: %w", spec.Name, spec.Parent, ErrUnknownTarget)
		}
		s.Attach(b.objects[i].ref.Handle, b.objects[p].ref.Handle)
	}

	for i, step := range sc.Steps {
		if err := b.addStep(step); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

func parseKind(s string) (object.Kind, error) {
	switch strings.ToLower(s) {
	case "circle":
		return object.KindCircle, nil
	case "rectangle", "rect":
		return object.KindRectangle, nil
	case "text":
		return object.KindText, nil
	case "picture", "image":
		return object.KindPicture, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (b *builder) addObject(spec ObjectSpec, load Loader) error {
	if spec.Name == "" {
		return errors.New("object name is required")
	}
	if _, dup := b.byName[spec.Name]; dup {
		return fmt.Errorf("duplicate object name %q", spec.Name)
	}
	kind, err := parseKind(spec.Kind)
	if err != nil {
		return err
	}

	var o *object.Object
	switch kind {
	case object.KindCircle:
		o = object.NewCircle()
		if spec.Radius > 0 {
			o.SetRadius(spec.Radius)
		}
	case object.KindRectangle:
		o = object.NewRectangle()
	case object.KindText:
		o = object.NewText(spec.Text)
		if spec.FontSize > 0 {
			o.SetFontSize(spec.FontSize)
		}
	case object.KindPicture:
		img, err := loadPicture(spec, load)
		if err != nil {
			return err
		}
		o = object.NewPicture(img)
	}

	if kind != object.KindCircle && (spec.Width > 0 || spec.Height > 0) {
		size := o.Size()
		if spec.Width > 0 {
			size.Width = spec.Width
		}
		if spec.Height > 0 {
			size.Height = spec.Height
		}
		o.SetSize(size)
		if spec.FontSize > 0 {
			o.SetFontSize(spec.FontSize)
		}
	}
	if spec.Position != nil {
		o.MoveTo(*spec.Position)
	}
	o.RotateTo(spec.Rotation)
	if spec.Fill != "" {
		c, err := colorful.Hex(spec.Fill)
		if err != nil {
			return fmt.Errorf("fill: %w", err)
		}
		o.SetFill(c)
	}
	if spec.Stroke != "" {
		c, err := colorful.Hex(spec.Stroke)
		if err != nil {
			return fmt.Errorf("stroke: %w", err)
		}
		o.SetStroke(c)
	}
	if spec.StrokeWeight > 0 {
		o.SetStrokeWeight(spec.StrokeWeight)
	}
	if spec.Visible {
		o.Show()
	}

	b.byName[spec.Name] = len(b.objects)
	b.objects = append(b.objects, entry{name: spec.Name, kind: kind, ref: b.scene.Add(o)})
	return nil
}

func loadPicture(spec ObjectSpec, load Loader) (image.Image, error) {
	if load == nil {
		return nil, errors.New("picture objects need a loader")
	}
	if spec.QR != "" {
		size := int(spec.Width)
		if size <= 0 {
			size = 256
		}
		return load.LoadQRCode(spec.QR, size)
	}
	if spec.Source == "" {
		return nil, errors.New("picture needs a source or qr")
	}
	dpi := spec.DPI
	if dpi <= 0 {
		dpi = 150
	}
	return load.LoadPicture(spec.Source, spec.Page, dpi)
}

// resolve returns the objects matched by a name or glob pattern, in
// declaration order.
func (b *builder) resolve(target string) ([]entry, error) {
	if i, ok := b.byName[target]; ok {
		return []entry{b.objects[i]}, nil
	}
	var out []entry
	for _, e := range b.objects {
		ok, err := path.Match(target, e.name)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", target, err)
		}
		if ok {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}
	return out, nil
}

func (s Step) kinds() int {
	n := 0
	if s.Wait != nil {
		n++
	}
	if len(s.Show) > 0 {
		n++
	}
	if len(s.Remove) > 0 {
		n++
	}
	if len(s.Act) > 0 {
		n++
	}
	if s.Play != nil {
		n++
	}
	return n
}

func (b *builder) addStep(step Step) error {
	if step.kinds() != 1 {
		return ErrInvalidStep
	}

	switch {
	case step.Wait != nil:
		if *step.Wait < 0 {
			return fmt.Errorf("%w: negative wait %g", ErrInvalidStep, *step.Wait)
		}
		b.scene.Wait(*step.Wait)
	case len(step.Show) > 0:
		for _, name := range step.Show {
			objs, err := b.resolve(name)
			if err != nil {
				return err
			}
			for _, e := range objs {
				b.scene.Show(e.ref.Handle)
			}
		}
	case len(step.Remove) > 0:
		for _, name := range step.Remove {
			objs, err := b.resolve(name)
			if err != nil {
				return err
			}
			for _, e := range objs {
				b.scene.Remove(e.ref.Handle)
			}
		}
	case len(step.Act) > 0:
		tas, err := b.actions(step.Act)
		if err != nil {
			return err
		}
		for _, ta := range tas {
			b.scene.Act(ta)
		}
	case step.Play != nil:
		tas, err := b.actions(step.Play.Actions)
		if err != nil {
			return err
		}
		batch := b.scene.Play(tas...)
		if step.Play.RunTime > 0 {
			batch.RunTime(step.Play.RunTime)
		}
		if step.Play.RateFunc != "" {
			e, err := easing.Parse(step.Play.RateFunc)
			if err != nil {
				return err
			}
			batch.RateFunc(e)
		}
		batch.Commit()
	}
	return nil
}

func (b *builder) actions(specs []ActionSpec) ([]animation.TargetAction, error) {
	var out []animation.TargetAction
	for _, spec := range specs {
		objs, err := b.resolve(spec.Target)
		if err != nil {
			return nil, err
		}
		for _, e := range objs {
			a, err := newAction(spec, e.kind)
			if err != nil {
				return nil, fmt.Errorf("%s on %s: %w", spec.Type, e.name, err)
			}
			out = append(out, animation.NewTargetAction(e.ref.Handle, a))
		}
	}
	return out, nil
}

// newAction builds a fresh action per target, since actions carry their
// captured start state.
func newAction(spec ActionSpec, kind object.Kind) (action.Action, error) {
	point := func(p *geom.Point, field string) (geom.Point, error) {
		if p == nil {
			return geom.Point{}, fmt.Errorf("missing %q", field)
		}
		return *p, nil
	}

	switch strings.ToLower(spec.Type) {
	case "move_by", "shift":
		by, err := point(spec.By, "by")
		if err != nil {
			return nil, err
		}
		return &action.MoveBy{By: by}, nil
	case "move_to":
		to, err := point(spec.To, "to")
		if err != nil {
			return nil, err
		}
		return &action.MoveTo{To: to}, nil
	case "to_edge":
		dir, err := action.ParseDirection(spec.Direction)
		if err != nil {
			return nil, err
		}
		buffer := action.DefaultBuffer
		if spec.Buffer != nil {
			buffer = *spec.Buffer
		}
		return &action.ToEdge{Direction: dir, Buffer: buffer}, nil
	case "show_creation":
		return &action.ShowCreation{}, nil
	case "fade_in":
		return &action.FadeIn{}, nil
	case "fade_out":
		return &action.FadeOut{}, nil
	case "fade_to":
		return &action.FadeTo{To: spec.Value}, nil
	case "set_color":
		c, err := colorful.Hex(spec.Color)
		if err != nil {
			return nil, fmt.Errorf("color: %w", err)
		}
		return &action.ColorTo{To: c}, nil
	case "scale":
		return &action.ChangeSize{Change: &action.Scale{By: spec.Value}}, nil
	case "set_width":
		return &action.ChangeSize{Change: &action.SetWidth{To: spec.Value}}, nil
	case "set_height":
		return &action.ChangeSize{Change: &action.SetHeight{To: spec.Value}}, nil
	case "set_size":
		if spec.Size == nil {
			return nil, fmt.Errorf("missing %q", "size")
		}
		return &action.ChangeSize{Change: &action.SetSize{To: *spec.Size}}, nil
	case "rotate_by":
		return &action.RotateBy{By: spec.Value}, nil
	case "rotate_to":
		return &action.RotateTo{To: spec.Value}, nil
	case "set_radius":
		if kind != object.KindCircle {
			return nil, ErrKindMismatch
		}
		return &action.CircleAction{Change: &action.SetRadius{To: spec.Value}}, nil
	case "set_font_size":
		if kind != object.KindText {
			return nil, ErrKindMismatch
		}
		return &action.TextAction{Change: &action.SetFontSize{To: spec.Value}}, nil
	case "scale_font_size":
		if kind != object.KindText {
			return nil, ErrKindMismatch
		}
		return &action.TextAction{Change: &action.ScaleFontSize{By: spec.Value}}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, spec.Type)
}
