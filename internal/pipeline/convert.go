package pipeline

import (
	"fmt"

	"github.com/surveygrid/lasctl/las"
)

// ConvertOptions are the user's requested changes for one conversion.
// Nil fields mean "keep the input's value". Force bypasses the
// confirmation step; the loss set is still computed and reported.
type ConvertOptions struct {
	PointFormat *int
	FileVersion *las.Version
	Force       bool
}

// LossReporter receives the computed loss set when a forced conversion
// skips the confirmation step, so the drop is still visible.
type LossReporter func(lost []string)

// Convert runs the conversion pipeline: validate the requested target
// against the supported sets before any I/O, read the input, compute
// the dimensions a point-format change would drop, gate on confirm
// when the loss set is non-empty, convert, and write the output with
// suffix-driven compression.
//
// With no requested format or version the input is decoded and
// re-encoded unchanged, which normalizes the container as a side
// effect of a "no-op" conversion.
func Convert(input, output string, opts ConvertOptions, confirm Confirmer, report LossReporter) error {
	if err := validateTarget(opts); err != nil {
		return err
	}

	f, err := las.Read(input)
	if err != nil {
		return err
	}

	if opts.PointFormat != nil {
		lost := las.LostDimensions(f.Header.PointFormatID, *opts.PointFormat)
		switch {
		case len(lost) == 0:
			// Lossless; nothing to confirm.
		case opts.Force:
			if report != nil {
				report(lost)
			}
		default:
			ok, err := confirm.Confirm(lost)
			if err != nil {
				return err
			}
			if !ok {
				return ErrUserDeclined
			}
		}
	}

	targetFormat := f.Header.PointFormatID
	if opts.PointFormat != nil {
		targetFormat = *opts.PointFormat
	}
	targetVersion := f.Header.Version
	if opts.FileVersion != nil {
		targetVersion = *opts.FileVersion
	}

	converted, err := las.Convert(f, targetFormat, targetVersion)
	if err != nil {
		return err
	}
	return writeFile(converted, output)
}

// validateTarget rejects unsupported targets before the input file is
// ever opened.
func validateTarget(opts ConvertOptions) error {
	if opts.PointFormat != nil && !las.IsSupportedPointFormat(*opts.PointFormat) {
		supported := las.SupportedPointFormats()
		list := make([]string, len(supported))
		for i, id := range supported {
			list[i] = fmt.Sprint(id)
		}
		return &UnsupportedError{
			What:      "point format",
			Got:       fmt.Sprint(*opts.PointFormat),
			Supported: list,
		}
	}
	if opts.FileVersion != nil && !las.IsSupportedVersion(*opts.FileVersion) {
		supported := las.SupportedVersions()
		list := make([]string, len(supported))
		for i, v := range supported {
			list[i] = v.String()
		}
		return &UnsupportedError{
			What:      "file version",
			Got:       opts.FileVersion.String(),
			Supported: list,
		}
	}
	return nil
}
