package imaging

import (
	"net/url"
	"strings"

	"wardrobe/feature/clothing/colors"
	"wardrobe/feature/clothing/models"
)

// ImagingPath is the avatar renderer endpoint on a hotel origin.
const ImagingPath = "/habbo-imaging/avatarimage"

// Base mannequins. Hair previews drop the base hair so the target is not hidden.
const (
	baseFemale     = "hr-500-7.hd-600-1.ch-710-66.lg-870-82.sh-290-80"
	baseMale       = "hr-100-7.hd-190-7.ch-210-66.lg-270-82.sh-290-80"
	baseHairFemale = "hd-600-1.ch-710-66.lg-870-82.sh-290-80"
	baseHairMale   = "hd-190-7.ch-210-66.lg-270-82.sh-290-80"
	neutralFemale  = "hd-600-1"
	neutralMale    = "hd-180-1"
)

// Figure identifies the part to render and its colors.
type Figure struct {
	Category models.Category
	FigureID string
	Colors   []string
	Gender   models.Gender
}

// FigureOf builds a Figure for item rendered with resolved colors.
func FigureOf(item models.CatalogItem, resolved colors.Resolved, gender models.Gender) Figure {
	if gender == "" {
		gender = item.Gender
	}
	return Figure{
		Category: item.Category,
		FigureID: item.FigureID,
		Colors:   resolved.Colors(),
		Gender:   gender,
	}
}

// Token renders the figure as a single "category-id-color[-color2]" part.
func (f Figure) Token() string {
	var b strings.Builder
	b.WriteString(string(f.Category))
	b.WriteByte('-')
	b.WriteString(f.FigureID)
	for i, c := range f.Colors {
		if i == 2 || c == "" {
			break
		}
		b.WriteByte('-')
		b.WriteString(c)
	}
	return b.String()
}

// renderGender is the gender sent to the renderer; unisex items preview on the male body.
func (f Figure) renderGender() models.Gender {
	if f.Gender == models.GenderFemale {
		return models.GenderFemale
	}
	return models.GenderMale
}

// Pose holds the rendering parameters. Zero fields take DefaultPose values.
type Pose struct {
	Size          string
	Direction     string
	HeadDirection string
	Action        string
	Gesture       string
}

// DefaultPose is a large, three-quarter standing pose.
var DefaultPose = Pose{
	Size:          "l",
	Direction:     "2",
	HeadDirection: "3",
	Action:        "std",
	Gesture:       "std",
}

func (p Pose) withDefaults() Pose {
	if p.Size == "" {
		p.Size = DefaultPose.Size
	}
	if p.Direction == "" {
		p.Direction = DefaultPose.Direction
	}
	if p.HeadDirection == "" {
		p.HeadDirection = DefaultPose.HeadDirection
	}
	if p.Action == "" {
		p.Action = DefaultPose.Action
	}
	if p.Gesture == "" {
		p.Gesture = DefaultPose.Gesture
	}
	return p
}

// BaseFigure returns the mannequin a figure is previewed on.
func BaseFigure(category models.Category, gender models.Gender) string {
	female := gender == models.GenderFemale
	switch {
	case category == models.CategoryHair && female:
		return baseHairFemale
	case category == models.CategoryHair:
		return baseHairMale
	case female:
		return baseFemale
	default:
		return baseMale
	}
}

// Merge places token onto base, replacing the base part of the same category in place.
// A category absent from base is appended.
func Merge(base, token string) string {
	category, _, _ := strings.Cut(token, "-")
	parts := strings.Split(base, ".")
	replaced := false
	for i, p := range parts {
		if c, _, _ := strings.Cut(p, "-"); c == category {
			parts[i] = token
			replaced = true
		}
	}
	if !replaced {
		parts = append(parts, token)
	}
	return strings.Join(parts, ".")
}

// BuildAvatarURL renders the figure on a full mannequin.
func BuildAvatarURL(host string, f Figure, pose Pose) string {
	gender := f.renderGender()
	figure := Merge(BaseFigure(f.Category, gender), f.Token())
	return build(host, figure, gender, pose.withDefaults(), false)
}

// BuildIsolatedThumbnailURL renders only the figure over a bare head.
// Head categories are cropped to the head.
func BuildIsolatedThumbnailURL(host string, f Figure, pose Pose) string {
	gender := f.renderGender()
	neutral := neutralMale
	if gender == models.GenderFemale {
		neutral = neutralFemale
	}
	figure := Merge(neutral, f.Token())
	return build(host, figure, gender, pose.withDefaults(), f.Category.HeadFocused())
}

func build(host, figure string, gender models.Gender, pose Pose, headOnly bool) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(host, "/"))
	b.WriteString(ImagingPath)

	params := [][2]string{
		{"figure", figure},
		{"gender", string(gender)},
		{"size", pose.Size},
		{"direction", pose.Direction},
		{"head_direction", pose.HeadDirection},
		{"action", pose.Action},
		{"gesture", pose.Gesture},
	}
	if headOnly {
		params = append(params, [2]string{"headonly", "1"})
	}
	for i, kv := range params {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(kv[0])
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv[1]))
	}
	return b.String()
}
