package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"ats-sync-backend/controllers"
	"ats-sync-backend/lib/application"
	candidatesync "ats-sync-backend/lib/candidate-sync"
	synclease "ats-sync-backend/lib/candidate-sync/lease"
	apimodels "ats-sync-backend/models/api"
	applicantapimodels "ats-sync-backend/models/api/applicant"
	dbmodels "ats-sync-backend/models/db"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("application", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Post("upload-resume", controller.uploadResume) // загрузить резюме кандидата
			idRouter.Post("upload-letter", controller.uploadLetter) // загрузить сопроводительное письмо
			idRouter.Post("sync", controller.sync)                  // запустить синхронизацию вручную
		})
	})
}

// @Summary Создать отклик
// @Tags Отклик
// @Description Создать отклик на вакансию
// @Param   body	body	applicantapimodels.SubmissionData	true	"данные отклика"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application [post]
func (c *applicationApiController) create(ctx *fiber.Ctx) error {
	data := applicantapimodels.SubmissionData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := application.Instance.CreateFromSubmission(data, ctx.IP())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Получить отклик
// @Tags Отклик
// @Description Получить отклик со статусом синхронизации
// @Param   id	path	string	true	"ID отклика"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id} [get]
func (c *applicationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := application.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Загрузить резюме
// @Tags Отклик
// @Description Загрузить файл резюме к отклику
// @Param   id	path	string	true	"ID отклика"
// @Param   file	formData	file	true	"file to upload"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/upload-resume [post]
func (c *applicationApiController) uploadResume(ctx *fiber.Ctx) error {
	return c.upload(ctx, dbmodels.FileSlotResume)
}

// @Summary Загрузить сопроводительное письмо
// @Tags Отклик
// @Description Загрузить сопроводительное письмо к отклику
// @Param   id	path	string	true	"ID отклика"
// @Param   file	formData	file	true	"file to upload"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/upload-letter [post]
func (c *applicationApiController) uploadLetter(ctx *fiber.Ctx) error {
	return c.upload(ctx, dbmodels.FileSlotLetter)
}

func (c *applicationApiController) upload(ctx *fiber.Ctx, slot string) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("Ошибка при получении файла")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("Ошибка при загрузке файла")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	contentType := file.Header.Get("Content-Type")
	err = application.Instance.AttachFile(ctx.UserContext(), id, slot, file.Filename, contentType, fileBody)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Синхронизировать отклик
// @Tags Отклик
// @Description Запустить синхронизацию отклика с ATS вне расписания
// @Param   id	path	string	true	"ID отклика"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/sync [post]
func (c *applicationApiController) sync(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	ok, err := synclease.Instance.Acquire(ctx.UserContext(), id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if !ok {
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError("синхронизация отклика уже выполняется"))
	}
	defer func() {
		if releaseErr := synclease.Instance.Release(ctx.UserContext(), id); releaseErr != nil {
			log.WithError(releaseErr).WithField("application_id", id).Error("Ошибка освобождения аренды синхронизации")
		}
	}()
	candidatesync.Instance.Sync(ctx.UserContext(), id)
	view, err := application.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
