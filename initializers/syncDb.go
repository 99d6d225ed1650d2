package initializers

import "github.com/Kariqs/amexan-checkout/models"

func SyncDatabase() error {
	if err := DB.AutoMigrate(&models.Cart{}, &models.CartItem{}); err != nil {
		return err
	}
	Logger.Info("Database synced successfully.")
	return nil
}
