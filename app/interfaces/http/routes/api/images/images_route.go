package images

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"jajresources.com/image-gateway/app/domain/common"
	"jajresources.com/image-gateway/app/domain/image"
	"jajresources.com/image-gateway/app/interfaces/http/responses"
	"jajresources.com/image-gateway/app/utils/functional"
	"jajresources.com/image-gateway/config/environment_variables"
)

type ImagesRoute struct {
	imageService *image.ImageService
}

func NewImagesRoute(imageService *image.ImageService) *ImagesRoute {
	return &ImagesRoute{
		imageService: imageService,
	}
}

func (route *ImagesRoute) RegisterRouter(router gin.IRouter) {
	imagesRouter := router.Group("/images")
	imagesRouter.GET("", route.GetImages)
	imagesRouter.GET("/:tag", route.GetImages)
	imagesRouter.POST("", route.CreateImage)
	// public ids may contain folder separators
	imagesRouter.PUT("/*publicId", route.UpdateImage)
	imagesRouter.DELETE("/*publicId", route.DeleteImage)
}

type ImageResponse struct {
	PublicID       string   `json:"public_id"`
	SecureURL      string   `json:"secure_url"`
	Tags           []string `json:"tags"`
	InstrumentName string   `json:"instrument_name,omitempty"`
	DisplayName    string   `json:"display_name"`
}

type ListImagesResponse struct {
	Success bool            `json:"success"`
	Images  []ImageResponse `json:"images"`
}

type CreateImageRequest struct {
	URL            string        `json:"url"`
	Tags           image.TagList `json:"tags"`
	Name           string        `json:"name"`
	InstrumentName string        `json:"instrument_name"`
}

type CreateImageResponse struct {
	Success bool          `json:"success"`
	Image   ImageResponse `json:"image"`
	Tags    []string      `json:"tags"`
}

type UpdateImageRequest struct {
	Tags           image.TagList `json:"tags"`
	Name           string        `json:"name"`
	InstrumentName string        `json:"instrument_name"`
}

type UpdateImageResponse struct {
	Success bool          `json:"success"`
	Updated ImageResponse `json:"updated"`
}

// GetImages godoc
// @Summary     List images
// @Description Lists all images, or only those carrying the given tag. Served from a cached snapshot.
// @Tags        images
// @Produce     json
// @Param       tag path string false "tag filter (case-insensitive)"
// @Success     200 {object} ListImagesResponse
// @Router      /api/images/{tag} [get]
func (route *ImagesRoute) GetImages(reqCtx *gin.Context) {
	filter := image.ImageFilter{}
	if tag := reqCtx.Param("tag"); tag != "" {
		filter.Tag = &tag
	}

	result := route.imageService.List(reqCtx.Request.Context(), filter)
	if result.Stale {
		reqCtx.Header("X-Cache-Stale", "true")
	}

	reqCtx.JSON(http.StatusOK, ListImagesResponse{
		Success: true,
		Images:  functional.Map(result.Images, toImageResponse),
	})
}

// CreateImage godoc
// @Summary     Upload an image
// @Description Uploads a multipart file or registers a remote URL, with optional tags and name.
// @Tags        images
// @Accept      multipart/form-data,json
// @Produce     json
// @Param       file formData file false "image file"
// @Param       url formData string false "remote image URL"
// @Param       tags formData string false "comma separated tags"
// @Param       name formData string false "display name"
// @Success     201 {object} CreateImageResponse
// @Failure     400 {object} responses.ErrorResponse
// @Failure     500 {object} responses.ErrorResponse
// @Router      /api/images [post]
func (route *ImagesRoute) CreateImage(reqCtx *gin.Context) {
	reqCtx.Request.Body = http.MaxBytesReader(reqCtx.Writer, reqCtx.Request.Body, environment_variables.EnvironmentVariables().MaxUploadBytes())

	var (
		input image.CreateImageInput
		err   error
	)
	if reqCtx.ContentType() == gin.MIMEJSON {
		input, err = createInputFromJSON(reqCtx)
	} else {
		input, err = createInputFromForm(reqCtx)
	}
	if err != nil {
		abortWithError(reqCtx, err)
		return
	}

	created, err := route.imageService.Create(reqCtx.Request.Context(), input)
	if err != nil {
		abortWithError(reqCtx, err)
		return
	}

	reqCtx.JSON(http.StatusCreated, CreateImageResponse{
		Success: true,
		Image:   toImageResponse(*created.Image),
		Tags:    created.Tags,
	})
}

// UpdateImage godoc
// @Summary     Update image tags and name
// @Description Replaces the image's tags (an empty list clears them) and sets its display name.
// @Tags        images
// @Accept      json
// @Produce     json
// @Param       publicId path string true "image public id"
// @Param       body body UpdateImageRequest true "new tags and name"
// @Success     200 {object} UpdateImageResponse
// @Failure     500 {object} responses.ErrorResponse
// @Router      /api/images/{publicId} [put]
func (route *ImagesRoute) UpdateImage(reqCtx *gin.Context) {
	var req UpdateImageRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(reqCtx, common.NewInvalidInputError(responses.ErrorCodeInvalidBody, "invalid request body"))
		return
	}

	updated, err := route.imageService.Update(reqCtx.Request.Context(), publicIDParam(reqCtx), image.UpdateImageInput{
		Tags: req.Tags,
		Name: firstNonEmpty(req.Name, req.InstrumentName),
	})
	if err != nil {
		abortWithError(reqCtx, err)
		return
	}

	reqCtx.JSON(http.StatusOK, UpdateImageResponse{
		Success: true,
		Updated: toImageResponse(*updated),
	})
}

// DeleteImage godoc
// @Summary     Delete an image
// @Tags        images
// @Produce     json
// @Param       publicId path string true "image public id"
// @Success     200 {object} responses.SuccessResponse
// @Failure     500 {object} responses.ErrorResponse
// @Router      /api/images/{publicId} [delete]
func (route *ImagesRoute) DeleteImage(reqCtx *gin.Context) {
	if err := route.imageService.Delete(reqCtx.Request.Context(), publicIDParam(reqCtx)); err != nil {
		abortWithError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.SuccessResponse{Success: true})
}

func createInputFromJSON(reqCtx *gin.Context) (image.CreateImageInput, error) {
	var req CreateImageRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return image.CreateImageInput{}, bodyError(err)
	}
	return image.CreateImageInput{
		URL:  req.URL,
		Tags: req.Tags,
		Name: firstNonEmpty(req.Name, req.InstrumentName),
	}, nil
}

func createInputFromForm(reqCtx *gin.Context) (image.CreateImageInput, error) {
	var form *multipart.Form
	if strings.HasPrefix(reqCtx.ContentType(), gin.MIMEMultipartPOSTForm) {
		parsed, err := reqCtx.MultipartForm()
		if err != nil {
			return image.CreateImageInput{}, bodyError(err)
		}
		form = parsed
	}

	tags := reqCtx.PostFormArray("tags")
	if len(tags) == 0 {
		tags = reqCtx.PostFormArray("tags[]")
	}
	input := image.CreateImageInput{
		URL:  reqCtx.PostForm("url"),
		Tags: image.TagsFromForm(tags),
		Name: firstNonEmpty(reqCtx.PostForm("name"), reqCtx.PostForm("instrument_name")),
	}

	if form != nil && len(form.File["file"]) > 0 {
		file, err := readFile(form.File["file"][0])
		if err != nil {
			return image.CreateImageInput{}, err
		}
		input.File = file
	}
	return input, nil
}

func readFile(header *multipart.FileHeader) (*image.ImageFile, error) {
	file, err := header.Open()
	if err != nil {
		return nil, common.NewInvalidInputError(responses.ErrorCodeUnreadableFile, "unable to read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, common.NewInvalidInputError(responses.ErrorCodeUnreadableFile, "unable to read uploaded file")
	}
	return &image.ImageFile{
		Data:     data,
		MimeType: header.Header.Get("Content-Type"),
	}, nil
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return common.NewInvalidInputError(responses.ErrorCodeBodyTooLarge, "request body too large")
	}
	return common.NewInvalidInputError(responses.ErrorCodeInvalidBody, "invalid request body")
}

func abortWithError(reqCtx *gin.Context, err error) {
	_ = reqCtx.Error(err)
	reqCtx.Abort()
}

func publicIDParam(reqCtx *gin.Context) string {
	return strings.TrimPrefix(reqCtx.Param("publicId"), "/")
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func toImageResponse(img image.Image) ImageResponse {
	tags := img.Tags
	if tags == nil {
		tags = []string{}
	}
	return ImageResponse{
		PublicID:       img.PublicID,
		SecureURL:      img.SecureURL,
		Tags:           tags,
		InstrumentName: img.Name,
		DisplayName:    img.DisplayName(),
	}
}
