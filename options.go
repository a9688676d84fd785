package htmldown

// HeadingStyle selects the Markdown heading syntax.
type HeadingStyle string

// Heading styles.
const (
	HeadingAtx    HeadingStyle = "atx"
	HeadingSetext HeadingStyle = "setext"
)

// LinkStyle selects the Markdown link syntax.
type LinkStyle string

// Link styles.
const (
	LinkInline     LinkStyle = "inline"
	LinkReferenced LinkStyle = "referenced"
)

// Fence characters for code blocks.
const (
	FenceBacktick = '`'
	FenceTilde    = '~'
)

// Options configures a conversion. The zero value is not usable; start
// from DefaultOptions. Options are treated as immutable for the duration
// of a Convert call, so one value may serve concurrent conversions.
type Options struct {
	// HeadingStyle is atx (#) or setext (underline). Setext only exists
	// for levels 1 and 2; deeper headings fall back to atx.
	HeadingStyle HeadingStyle

	// LinkStyle is inline [text](url) or referenced [text][1] with a
	// trailing reference appendix.
	LinkStyle LinkStyle

	// CodeFence is the fence character for code blocks: '`' or '~'.
	CodeFence rune

	// BulletMarker is the unordered list marker: '-', '*' or '+'.
	BulletMarker rune

	// BaseURL resolves relative link and image URLs when non-empty.
	BaseURL string

	// ExcludeSelectors lists simple CSS selectors (tag, .class, #id)
	// for subtrees to drop from the output.
	ExcludeSelectors []string

	// IncludeSelectors lists selectors that force matching nodes back
	// into the output. Include always wins over exclude.
	IncludeSelectors []string
}

// DefaultOptions returns the default conversion options.
func DefaultOptions() Options {
	return Options{
		HeadingStyle: HeadingAtx,
		LinkStyle:    LinkInline,
		CodeFence:    FenceBacktick,
		BulletMarker: '-',
	}
}

// Validate returns an EINVALID error if any option falls outside its
// recognized enumeration. The rendering engine assumes validated options.
func (o Options) Validate() error {
	switch o.HeadingStyle {
	case HeadingAtx, HeadingSetext:
	default:
		return Errorf(EINVALID, "unknown heading style %q", o.HeadingStyle)
	}
	switch o.LinkStyle {
	case LinkInline, LinkReferenced:
	default:
		return Errorf(EINVALID, "unknown link style %q", o.LinkStyle)
	}
	switch o.CodeFence {
	case FenceBacktick, FenceTilde:
	default:
		return Errorf(EINVALID, "unknown code fence %q", o.CodeFence)
	}
	switch o.BulletMarker {
	case '-', '*', '+':
	default:
		return Errorf(EINVALID, "unknown bullet marker %q", o.BulletMarker)
	}
	return nil
}
