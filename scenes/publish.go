package scenes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/lumina/portfolio"
	"github.com/automoto/lumina/store"
)

var errImageUnreadable = errors.New("image file unreadable")

// checkImage rejects a local image before any save work starts.
func checkImage(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %v", errImageUnreadable, err)
	}
	if info.Size() > store.MaxImageBytes {
		return store.ErrImageTooLarge
	}
	return nil
}

func imageProblem(err error) string {
	if errors.Is(err, store.ErrImageTooLarge) {
		return "Image is too large. Please use an image under 5MB."
	}
	return "Could not read the image file."
}

// saveResult is what a save hands back to the dashboard.
type saveResult struct {
	saved     portfolio.Project
	projects  []portfolio.Project
	saveErr   error
	uploadErr error
	listErr   error
}

// saveProject uploads the local image if there is one, then stores draft and
// reloads the list. A failed upload still saves the project, keeping the
// draft's previous image.
func saveProject(ctx context.Context, st store.ProjectStore, draft portfolio.Project, local string) saveResult {
	var r saveResult
	if local != "" {
		url, err := uploadFile(ctx, st, local)
		if err != nil {
			log.Printf("Warning: Could not upload %s: %v", local, err)
			r.uploadErr = err
		} else {
			draft.ImageURL = url
		}
	}

	if draft.ID == "" {
		r.saved, r.saveErr = st.Insert(ctx, draft)
	} else {
		r.saved, r.saveErr = st.Update(ctx, draft)
	}
	if r.saveErr != nil {
		log.Printf("Warning: Could not save project: %v", r.saveErr)
		return r
	}

	r.projects, r.listErr = st.List(ctx)
	if r.listErr != nil {
		log.Printf("Warning: Could not reload projects: %v", r.listErr)
	}
	return r
}

// message picks the notice for a finished save and reports whether it is an error.
func (r saveResult) message() (string, bool) {
	switch {
	case r.saveErr != nil:
		return "Failed to save project: " + r.saveErr.Error(), true
	case r.uploadErr != nil:
		return "Failed to upload image. Project saved without the new image.", true
	default:
		return "Project saved.", false
	}
}

// uploadFile stores the image at path and returns its url.
func uploadFile(ctx context.Context, st store.ProjectStore, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) > store.MaxImageBytes {
		return "", store.ErrImageTooLarge
	}
	return st.UploadImage(ctx, filepath.Base(path), data)
}
