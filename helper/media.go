package helper

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go"
	"github.com/cloudinary/cloudinary-go/api/uploader"

	"framekart-io/api/configs"
)

func ImageUploadHelper(input interface{}) (uploader.UploadResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	cloudName := configs.LoadEnvFor("CLOUDINARY_CLOUDNAME")
	apiKey := configs.LoadEnvFor("CLOUDINARY_API_KEY")
	apiSecret := configs.LoadEnvFor("CLOUDINARY_API_SECRET")
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return uploader.UploadResult{}, err
	}

	uploadFolder := configs.LoadEnvOr("CLOUDINARY_UPLOAD_FOLDER", "framekart/avatars")
	uploadRes, err := cld.Upload.Upload(ctx, input, uploader.UploadParams{Folder: uploadFolder})
	if err != nil {
		return uploader.UploadResult{}, err
	}

	return *uploadRes, nil
}

func ImageDeletionHelper(params uploader.DestroyParams) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	cloudName := configs.LoadEnvFor("CLOUDINARY_CLOUDNAME")
	apiKey := configs.LoadEnvFor("CLOUDINARY_API_KEY")
	apiSecret := configs.LoadEnvFor("CLOUDINARY_API_SECRET")
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return "", err
	}

	deleteResult, err := cld.Upload.Destroy(ctx, params)
	if err != nil {
		return "", err
	}
	return deleteResult.Result, nil
}
