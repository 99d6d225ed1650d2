package controllers

import (
	"errors"
	"net/http"

	"github.com/Kariqs/amexan-checkout/checkout"
	"github.com/Kariqs/amexan-checkout/initializers"
	"github.com/Kariqs/amexan-checkout/middlewares"
	"github.com/Kariqs/amexan-checkout/repositories"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	navigateHome = "home"
	navigateBack = "back"
)

// navigation records where the storefront has to send the shopper next.
type navigation struct {
	target string
}

func (n *navigation) GoToHome() { n.target = navigateHome }
func (n *navigation) GoBack() { n.target = navigateBack }

type updateFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value any    `json:"value"`
}

// StartCheckout opens a checkout session over the caller's cart.
func StartCheckout(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUserNotFound)
		return
	}

	cart := repositories.NewCartRepository(initializers.DB, userID)
	session := initializers.Sessions.Start(userID, cart)

	view, err := session.View(ctx.Request.Context())
	if err != nil {
		// drop the session so it does not linger until the idle sweep
		session.Leave(&navigation{})
		handleCheckoutError(ctx, session, err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"sessionId": session.ID,
		"view":      view,
	})
}

func GetCheckout(ctx *gin.Context) {
	session := middlewares.CurrentSession(ctx)

	view, err := session.View(ctx.Request.Context())
	if err != nil {
		handleCheckoutError(ctx, session, err)
		return
	}
	sendView(ctx, session, view, "")
}

func UpdateCheckoutField(ctx *gin.Context) {
	session := middlewares.CurrentSession(ctx)

	var body updateFieldRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := session.UpdateField(ctx.Request.Context(), body.Field, body.Value); err != nil {
		handleCheckoutError(ctx, session, err)
		return
	}
	respondWithView(ctx, session, "")
}

func ToggleBillingSameAsShipping(ctx *gin.Context) {
	session := middlewares.CurrentSession(ctx)

	if err := session.ToggleBillingSameAsShipping(ctx.Request.Context()); err != nil {
		handleCheckoutError(ctx, session, err)
		return
	}
	respondWithView(ctx, session, "")
}

// AdvanceCheckout moves to the next step, or places the order from the payment step.
func AdvanceCheckout(ctx *gin.Context) {
	session := middlewares.CurrentSession(ctx)
	nav := &navigation{}

	ack, err := session.Advance(ctx.Request.Context(), nav)
	if err != nil && ack == nil {
		handleCheckoutError(ctx, session, err)
		return
	}

	if ack != nil {
		initializers.Logger.Info("order placed",
			zap.String("session_id", session.ID),
			zap.Uint("user_id", session.UserID),
			zap.String("reference", ack.Reference),
		)
		resp := gin.H{
			"sessionId":       session.ID,
			"status":          session.Status(),
			"acknowledgement": ack,
			"navigate":        nav.target,
		}
		// the order went through; a leftover cart is only a warning
		if err != nil {
			initializers.Logger.Error("cart not cleared after order", zap.String("session_id", session.ID), zap.Error(err))
			resp["warning"] = msgCartNotCleared
		}
		sendJSONResponse(ctx, http.StatusOK, resp)
		return
	}

	initializers.Logger.Info("checkout advanced",
		zap.String("session_id", session.ID),
		zap.Stringer("step", session.Step()),
	)
	respondWithView(ctx, session, nav.target)
}

// RetreatCheckout goes back a step, or leaves the flow from the first one.
func RetreatCheckout(ctx *gin.Context) {
	session := middlewares.CurrentSession(ctx)
	nav := &navigation{}

	if err := session.Retreat(ctx.Request.Context(), nav); err != nil {
		handleCheckoutError(ctx, session, err)
		return
	}

	if session.Status().IsTerminal() {
		sendClosed(ctx, session, nav.target)
		return
	}
	respondWithView(ctx, session, nav.target)
}

// LeaveCheckout abandons the session and sends the shopper back to the store.
func LeaveCheckout(ctx *gin.Context) {
	session := middlewares.CurrentSession(ctx)
	nav := &navigation{}

	if err := session.Leave(nav); err != nil {
		handleCheckoutError(ctx, session, err)
		return
	}
	sendClosed(ctx, session, nav.target)
}

func respondWithView(ctx *gin.Context, session *checkout.Session, navigate string) {
	view, err := session.View(ctx.Request.Context())
	if err != nil {
		handleCheckoutError(ctx, session, err)
		return
	}
	sendView(ctx, session, view, navigate)
}

func sendView(ctx *gin.Context, session *checkout.Session, view checkout.View, navigate string) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"sessionId": session.ID,
		"status":    session.Status(),
		"view":      view,
		"navigate":  navigate,
	})
}

func sendClosed(ctx *gin.Context, session *checkout.Session, navigate string) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"sessionId": session.ID,
		"status":    session.Status(),
		"navigate":  navigate,
	})
}

func handleCheckoutError(ctx *gin.Context, session *checkout.Session, err error) {
	switch {
	case errors.Is(err, checkout.ErrUnknownField), errors.Is(err, checkout.ErrFieldType):
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, checkout.ErrStepInvalid):
		sendErrorResponse(ctx, http.StatusUnprocessableEntity, msgStepIncomplete)
	case errors.Is(err, checkout.ErrCartEmpty):
		sendErrorResponse(ctx, http.StatusConflict, msgCartEmpty)
	case errors.Is(err, checkout.ErrSessionClosed):
		sendErrorResponse(ctx, http.StatusGone, msgSessionClosed)
	case errors.Is(err, checkout.ErrSessionNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, msgSessionNotFound)
	case errors.Is(err, checkout.ErrPlacementFailed):
		initializers.Logger.Error("order placement failed", zap.String("session_id", session.ID), zap.Error(err))
		sendErrorResponse(ctx, http.StatusBadGateway, msgPlacementFailed)
	default:
		initializers.Logger.Error("checkout operation failed", zap.String("session_id", session.ID), zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
	}
}
