package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"ats-sync-backend/controllers"
	syncsettings "ats-sync-backend/lib/settings"
	apimodels "ats-sync-backend/models/api"
	syncapimodels "ats-sync-backend/models/api/sync"
)

type settingsApiController struct {
	controllers.BaseAPIController
}

func InitSettingsApiRouters(app *fiber.App) {
	controller := settingsApiController{}
	app.Route("settings", func(router fiber.Router) {
		router.Get("list", controller.ListSettings)
		router.Route(":code", func(codeRouter fiber.Router) {
			codeRouter.Put("", controller.UpdateSetting)
		})
	})
}

// @Summary Обновить значение настройки синхронизации
// @Tags Настройки
// @Description Обновить значение настройки синхронизации
// @Param 	code	path	string	true	"setting code"
// @Param	body	body	syncapimodels.UpdateSyncSettingValue	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/settings/{code} [put]
func (c *settingsApiController) UpdateSetting(ctx *fiber.Ctx) error {
	settingCode, err := c.GetIDByKey(ctx, "code")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload syncapimodels.UpdateSyncSettingValue
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = syncsettings.Instance.UpdateSettingValue(settingCode, payload.Value)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(nil))
}

// @Summary Список настроек синхронизации
// @Tags Настройки
// @Description Список настроек синхронизации
// @Success 200 {object} apimodels.Response{data=[]syncapimodels.SyncSettingView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/settings/list [get]
func (c *settingsApiController) ListSettings(ctx *fiber.Ctx) error {
	list, err := syncsettings.Instance.GetList()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
