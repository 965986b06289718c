package writeback

import (
	"context"
	"os"

	"github.com/hjfreyer/taglib-go/taglib"
)

/*
MP3Module is the nfo:Audio writeback module, grounded on
github.com/hjfreyer/taglib-go (other_examples/manifests/
perkeep-perkeep/go.mod). taglib-go only exposes tag decoding, not
writing; UpdateMetadata uses it to confirm the target file carries a
readable tag block and does not apply the row updates to the file,
the same decode-then-confirm shape as [ImageModule].
*/
type MP3Module struct{}

func init() {
	Register(&MP3Module{})
}

/*
RDFTypes implements [Module].
*/
func (m *MP3Module) RDFTypes() []string {
	return []string{"nfo:Audio"}
}

/*
ContentTypes implements [FileModule].
*/
func (m *MP3Module) ContentTypes() []string {
	return []string{"audio/mpeg"}
}

/*
Create implements [Module].
*/
func (m *MP3Module) Create(any) Module {
	return &MP3Module{}
}

/*
UpdateMetadata implements [Module]: opens the first row's target file
and decodes its existing ID3 tag, confirming the file is taggable.
taglib-go exposes no tag writer, so this module validates writability
rather than performing the write itself, the same decode-then-confirm
shape as [ImageModule]. Checks ctx after the decode step.
*/
func (m *MP3Module) UpdateMetadata(ctx context.Context, rows []Row) (bool, error) {
	if len(rows) == 0 {
		return false, nil
	}
	target := rows[0].URL()
	file, err := os.Open(target)
	if err != nil {
		return false, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return false, err
	}

	if _, err := taglib.Decode(file, info.Size()); err != nil {
		return false, err
	}

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	return true, nil
}
