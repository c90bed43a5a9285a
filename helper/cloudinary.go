package helper

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const profileImageFolder = "park/profiles"

// UploadProfileImage pushes the visitor's avatar to Cloudinary. The public id
// carries the user id and upload instant, so a new upload never overwrites the
// previous one and old links keep resolving.
func UploadProfileImage(ctx context.Context, userId uint, file multipart.File) (string, error) {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		return "", fmt.Errorf("cloudinary init: %w", err)
	}

	result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       profileImageFolder,
		PublicID:     fmt.Sprintf("user_%d_%d", userId, time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
