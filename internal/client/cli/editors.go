package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/krishnapriya5647/smart-asset-system/internal/client/models"
)

// getInt prompts until strconv accepts the answer; an empty line keeps def.
func (a *App) getInt(prompt string, def int64) (int64, error) {
	for {
		text, err := getSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return 0, err
		}
		if text == "" {
			return def, nil
		}
		n, err := strconv.ParseInt(text, 10, 64)
		if err == nil {
			return n, nil
		}
		fmt.Println("Please enter a number")
	}
}

// getText prompts once; an empty answer keeps def.
func (a *App) getText(prompt, def string) (string, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return "", err
	}
	if text == "" {
		return def, nil
	}
	return text, nil
}

func (a *App) showAsset(ctx context.Context, id int64) error {
	asset, err := a.assetService.Get(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("#%d %s\n  type: %s\n  serial: %s\n  status: %s\n",
		asset.ID, asset.Name, asset.Type, asset.SerialNumber, asset.Status)
	if asset.PurchaseDate != nil {
		fmt.Println("  purchased:", *asset.PurchaseDate)
	}
	return nil
}

func (a *App) newAsset(ctx context.Context) error {
	asset := &models.Asset{}
	var err error
	if asset.Name, err = a.getText("Name", ""); err != nil {
		return err
	}
	if asset.Type, err = a.getText("Type", ""); err != nil {
		return err
	}
	if asset.SerialNumber, err = a.getText("Serial number", ""); err != nil {
		return err
	}
	created, err := a.assetService.Create(ctx, asset)
	if err != nil {
		return err
	}
	fmt.Printf("Created asset #%d\n", created.ID)
	return nil
}

// editAsset loads the current record first so blank answers keep the stored
// values, the same way the edit dialog prefills its fields.
func (a *App) editAsset(ctx context.Context, id int64) error {
	asset, err := a.assetService.Get(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("Editing asset #%d (blank keeps the current value)\n", asset.ID)
	if asset.Name, err = a.getText("Name ["+asset.Name+"]", asset.Name); err != nil {
		return err
	}
	if asset.Type, err = a.getText("Type ["+asset.Type+"]", asset.Type); err != nil {
		return err
	}
	if asset.SerialNumber, err = a.getText("Serial ["+asset.SerialNumber+"]", asset.SerialNumber); err != nil {
		return err
	}
	if asset.Status, err = a.getText("Status ["+asset.Status+"]", asset.Status); err != nil {
		return err
	}
	if _, err := a.assetService.Update(ctx, asset); err != nil {
		return err
	}
	fmt.Println("Asset updated")
	return nil
}

func (a *App) deleteAsset(ctx context.Context, id int64) error {
	if err := a.assetService.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Println("Asset deleted")
	return nil
}

func (a *App) newItem(ctx context.Context) error {
	item := &models.InventoryItem{}
	var err error
	if item.ItemType, err = a.getText("Item type", ""); err != nil {
		return err
	}
	qty, err := a.getInt("Quantity", 0)
	if err != nil {
		return err
	}
	threshold, err := a.getInt("Low-stock threshold", 0)
	if err != nil {
		return err
	}
	item.Quantity, item.Threshold = int(qty), int(threshold)
	created, err := a.inventoryService.Create(ctx, item)
	if err != nil {
		return err
	}
	fmt.Printf("Created inventory item #%d\n", created.ID)
	return nil
}

func (a *App) editItem(ctx context.Context, id int64) error {
	item := &models.InventoryItem{ID: id}
	var err error
	if item.ItemType, err = a.getText("Item type", ""); err != nil {
		return err
	}
	qty, err := a.getInt("Quantity", 0)
	if err != nil {
		return err
	}
	threshold, err := a.getInt("Low-stock threshold", 0)
	if err != nil {
		return err
	}
	item.Quantity, item.Threshold = int(qty), int(threshold)
	updated, err := a.inventoryService.Update(ctx, item)
	if err != nil {
		return err
	}
	if updated.LowStock() {
		fmt.Println("Item updated (low stock)")
	} else {
		fmt.Println("Item updated")
	}
	return nil
}

func (a *App) deleteItem(ctx context.Context, id int64) error {
	if err := a.inventoryService.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Println("Item deleted")
	return nil
}

func (a *App) newAssignment(ctx context.Context) error {
	assetID, err := a.getInt("Asset id", 0)
	if err != nil {
		return err
	}
	employeeID, err := a.getInt("Employee id", 0)
	if err != nil {
		return err
	}
	created, err := a.assignmentService.Create(ctx, &models.Assignment{AssetID: assetID, EmployeeID: employeeID})
	if err != nil {
		return err
	}
	fmt.Printf("Assignment #%d created\n", created.ID)
	return nil
}

func (a *App) newTicket(ctx context.Context) error {
	assetID, err := a.getInt("Asset id", 0)
	if err != nil {
		return err
	}
	issue, err := a.getText("Issue", "")
	if err != nil {
		return err
	}
	created, err := a.ticketService.Create(ctx, &models.RepairTicket{AssetID: assetID, Issue: issue})
	if err != nil {
		return err
	}
	fmt.Printf("Ticket #%d opened\n", created.ID)
	return nil
}

// updateProfile changes username/email; blank answers keep the current ones.
func (a *App) updateProfile(ctx context.Context) error {
	username, err := a.getText("New username (blank keeps current)", "")
	if err != nil {
		return err
	}
	email, err := a.getText("New email (blank keeps current)", "")
	if err != nil {
		return err
	}
	p, err := a.authService.UpdateProfile(ctx, username, email)
	if err != nil {
		return err
	}
	fmt.Printf("Profile updated: %s <%s>\n", p.UserName, p.Email)
	return nil
}

func (a *App) resetRequest(ctx context.Context) error {
	email, err := a.getText("Account email", "")
	if err != nil {
		return err
	}
	if err := a.authService.RequestPasswordReset(ctx, email); err != nil {
		return err
	}
	fmt.Println("If the account exists, a reset token has been issued")
	return nil
}

func (a *App) resetConfirm(ctx context.Context, userID int64, token string) error {
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	if err := a.authService.ConfirmPasswordReset(ctx, userID, token, password); err != nil {
		return err
	}
	fmt.Println("Password changed, please login")
	return nil
}
