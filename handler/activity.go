package handler

import (
	"eldercare_booking/constants"
	"eldercare_booking/middleware"
	"eldercare_booking/model"
	"eldercare_booking/utils"
	"eldercare_booking/validate"

	"github.com/gofiber/fiber/v2"
)

func GetActivities(c *fiber.Ctx) error {
	filter, _ := c.Locals(validate.KeyFilter).(model.FilterActivity)

	activities, err := svc.Activities.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.ListResponse(c, activities, len(activities))
}

func GetActivity(c *fiber.Ctx) error {
	activity, err := svc.Activities.Get(c.UserContext(), validate.IDFromLocals(c))
	if err != nil {
		return respondError(c, err, constants.ACTIVITY_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, activity)
}

func GetActivityBySlug(c *fiber.Ctx) error {
	activity, err := svc.Activities.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondError(c, err, constants.ACTIVITY_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, activity)
}

func CreateActivity(c *fiber.Ctx) error {
	input, ok := validate.InputFromLocals[model.ActivityInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	activity, err := svc.Activities.Create(c.UserContext(), middleware.ActorFromLocals(c), input)
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, activity)
}

func UpdateActivity(c *fiber.Ctx) error {
	input, ok := validate.InputFromLocals[model.ActivityInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	activity, err := svc.Activities.Update(c.UserContext(), middleware.ActorFromLocals(c), validate.IDFromLocals(c), input)
	if err != nil {
		return respondError(c, err, constants.ACTIVITY_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, activity)
}

func DeleteActivity(c *fiber.Ctx) error {
	if err := svc.Activities.Delete(c.UserContext(), middleware.ActorFromLocals(c), validate.IDFromLocals(c)); err != nil {
		return respondError(c, err, constants.ACTIVITY_NOT_FOUND)
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.ACTIVITY_DELETED)
}
