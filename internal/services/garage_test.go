package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dealernet/garage-backend/internal/apierr"
	"github.com/dealernet/garage-backend/internal/types"
)

func TestGarageService_CreateAndGet_RoundTrip(t *testing.T) {
	env := newTestEnv(t, 0)
	ctx := context.Background()

	created := env.mustCreateGarage(t, "Garage Central")
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := env.garages.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get garage: %v", err)
	}
	if got.Name != "Garage Central" || got.City != "Lyon" || got.Email != "contact@garage.example" {
		t.Fatalf("unexpected garage: %+v", got)
	}
	if got.VehicleCount != 0 {
		t.Fatalf("expected vehicleCount=0 got %d", got.VehicleCount)
	}
	if len(got.HorairesOuverture["MONDAY"]) != 2 || len(got.HorairesOuverture["FRIDAY"]) != 1 {
		t.Fatalf("unexpected opening hours: %+v", got.HorairesOuverture)
	}
	if got.HorairesOuverture["MONDAY"][0].StartTime != "08:00" {
		t.Fatalf("unexpected first slot: %+v", got.HorairesOuverture["MONDAY"][0])
	}
}

func TestGarageService_GetByID_NotFound(t *testing.T) {
	env := newTestEnv(t, 0)

	_, err := env.garages.GetByID(context.Background(), 9999)
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected apierr.Error got %v", err)
	}
	if apiErr.Status != 404 {
		t.Fatalf("expected status 404 got %d", apiErr.Status)
	}
	if !strings.Contains(apiErr.Error(), "9999") {
		t.Fatalf("expected id in message, got %q", apiErr.Error())
	}
}

func TestGarageService_List_PaginatesAndSorts(t *testing.T) {
	env := newTestEnv(t, 0)
	ctx := context.Background()

	env.mustCreateGarage(t, "Charlie Motors")
	env.mustCreateGarage(t, "Alpha Auto")
	env.mustCreateGarage(t, "Bravo Cars")

	page, err := env.garages.List(ctx, 0, 2, "name", "asc")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalElements != 3 || page.TotalPages != 2 {
		t.Fatalf("expected 3 elements over 2 pages, got %d/%d", page.TotalElements, page.TotalPages)
	}
	if len(page.Content) != 2 {
		t.Fatalf("expected 2 garages on first page, got %d", len(page.Content))
	}
	if page.Content[0].Name != "Alpha Auto" || page.Content[1].Name != "Bravo Cars" {
		t.Fatalf("unexpected order: %q, %q", page.Content[0].Name, page.Content[1].Name)
	}

	last, err := env.garages.List(ctx, 1, 2, "name", "asc")
	if err != nil {
		t.Fatalf("list last page: %v", err)
	}
	if len(last.Content) != 1 || last.Content[0].Name != "Charlie Motors" {
		t.Fatalf("unexpected last page: %+v", last.Content)
	}
}

func TestGarageService_List_RejectsUnknownSortColumn(t *testing.T) {
	env := newTestEnv(t, 0)
	env.mustCreateGarage(t, "Beta")
	env.mustCreateGarage(t, "Alpha")

	// Unknown sort fields fall back to name asc instead of reaching SQL.
	page, err := env.garages.List(context.Background(), 0, 10, "telephone; DROP TABLE garages", "asc")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Content[0].Name != "Alpha" {
		t.Fatalf("expected name-sorted fallback, got %q first", page.Content[0].Name)
	}
}

func TestGarageService_Update_ReplacesOpeningHoursWholesale(t *testing.T) {
	env := newTestEnv(t, 0)
	ctx := context.Background()

	created := env.mustCreateGarage(t, "Garage Horaires")

	input := garageInput("Garage Horaires")
	input.HorairesOuverture = map[string][]types.OpeningSlot{
		"SATURDAY": {{StartTime: "10:00", EndTime: "16:00"}},
	}
	updated, err := env.garages.Update(ctx, created.ID, input)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.HorairesOuverture) != 1 {
		t.Fatalf("expected old days discarded, got %+v", updated.HorairesOuverture)
	}
	if _, kept := updated.HorairesOuverture["MONDAY"]; kept {
		t.Fatalf("MONDAY should have been replaced")
	}

	got, err := env.garages.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if len(got.HorairesOuverture["SATURDAY"]) != 1 {
		t.Fatalf("replacement hours not persisted: %+v", got.HorairesOuverture)
	}
}

func TestGarageService_Update_IsIdempotent(t *testing.T) {
	env := newTestEnv(t, 0)
	ctx := context.Background()

	created := env.mustCreateGarage(t, "Garage Stable")
	input := garageInput("Garage Stable Renamed")

	first, err := env.garages.Update(ctx, created.ID, input)
	if err != nil {
		t.Fatalf("first update: %v", err)
	}
	second, err := env.garages.Update(ctx, created.ID, input)
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if first.Name != second.Name || len(first.HorairesOuverture["MONDAY"]) != len(second.HorairesOuverture["MONDAY"]) {
		t.Fatalf("repeated update changed the result: %+v vs %+v", first, second)
	}
}

func TestGarageService_Update_NotFound(t *testing.T) {
	env := newTestEnv(t, 0)

	_, err := env.garages.Update(context.Background(), 9999, garageInput("Nope"))
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) || apiErr.Status != 404 {
		t.Fatalf("expected 404 got %v", err)
	}
}

func TestGarageService_Delete_RemovesVehiclesAndAccessories(t *testing.T) {
	env := newTestEnv(t, 0)
	ctx := context.Background()

	garage := env.mustCreateGarage(t, "Garage Cascade")
	vehicle := env.mustAddVehicle(t, garage.ID, "Renault", "Clio", 2021, "ESSENCE")
	price := decimal.NewFromFloat(199.99)
	if _, err := env.accessories.AddToVehicle(ctx, vehicle.ID, &types.AccessoryInput{
		Nom: "GPS", Prix: &price, Type: "ELECTRONIC",
	}); err != nil {
		t.Fatalf("add accessory: %v", err)
	}

	if err := env.garages.Delete(ctx, garage.ID); err != nil {
		t.Fatalf("delete garage: %v", err)
	}

	for table, model := range map[string]interface{}{
		"garages":              &types.Garage{},
		"vehicles":             &types.Vehicle{},
		"accessories":          &types.Accessory{},
		"garage_opening_hours": &types.OpeningTime{},
	} {
		var count int64
		if err := env.db.Model(model).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if count != 0 {
			t.Fatalf("expected %s emptied, found %d rows", table, count)
		}
	}
}

func TestGarageService_Delete_NotFound(t *testing.T) {
	env := newTestEnv(t, 0)

	err := env.garages.Delete(context.Background(), 9999)
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) || apiErr.Status != 404 {
		t.Fatalf("expected 404 got %v", err)
	}
}

func TestGarageService_FindByVehicleFuelType_ReturnsDistinctGarages(t *testing.T) {
	env := newTestEnv(t, 0)
	ctx := context.Background()

	electric := env.mustCreateGarage(t, "Garage Electrique")
	diesel := env.mustCreateGarage(t, "Garage Diesel")
	env.mustAddVehicle(t, electric.ID, "Renault", "Zoe", 2022, "ELECTRIC")
	env.mustAddVehicle(t, electric.ID, "Renault", "Megane E-Tech", 2023, "ELECTRIC")
	env.mustAddVehicle(t, diesel.ID, "Renault", "Kangoo", 2019, "DIESEL")

	views, err := env.garages.FindByVehicleFuelType(ctx, types.FuelElectric)
	if err != nil {
		t.Fatalf("find by fuel type: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 distinct garage, got %d", len(views))
	}
	if views[0].ID != electric.ID {
		t.Fatalf("expected garage %d, got %d", electric.ID, views[0].ID)
	}
	if views[0].VehicleCount != 2 {
		t.Fatalf("expected vehicleCount=2, got %d", views[0].VehicleCount)
	}
}

func TestGarageService_FindByAccessoryName(t *testing.T) {
	env := newTestEnv(t, 0)
	ctx := context.Background()

	withGPS := env.mustCreateGarage(t, "Garage Equipe")
	without := env.mustCreateGarage(t, "Garage Nu")
	vehicle := env.mustAddVehicle(t, withGPS.ID, "Renault", "Captur", 2020, "HYBRID")
	env.mustAddVehicle(t, without.ID, "Renault", "Twingo", 2018, "ESSENCE")

	price := decimal.NewFromInt(250)
	if _, err := env.accessories.AddToVehicle(ctx, vehicle.ID, &types.AccessoryInput{
		Nom: "GPS", Prix: &price, Type: "ELECTRONIC",
	}); err != nil {
		t.Fatalf("add accessory: %v", err)
	}

	views, err := env.garages.FindByAccessoryName(ctx, "GPS")
	if err != nil {
		t.Fatalf("find by accessory: %v", err)
	}
	if len(views) != 1 || views[0].ID != withGPS.ID {
		t.Fatalf("expected only garage %d, got %+v", withGPS.ID, views)
	}

	none, err := env.garages.FindByAccessoryName(ctx, "Toit ouvrant")
	if err != nil {
		t.Fatalf("find by unknown accessory: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty result, got %d", len(none))
	}
}

func TestGarageService_FindByVehicleModel(t *testing.T) {
	env := newTestEnv(t, 0)
	ctx := context.Background()

	first := env.mustCreateGarage(t, "Garage Nord")
	second := env.mustCreateGarage(t, "Garage Sud")
	env.mustAddVehicle(t, first.ID, "Renault", "Clio", 2021, "ESSENCE")
	env.mustAddVehicle(t, second.ID, "Renault", "Clio", 2022, "ESSENCE")
	env.mustAddVehicle(t, second.ID, "Renault", "Scenic", 2020, "DIESEL")

	views, err := env.garages.FindByVehicleModel(ctx, "Clio")
	if err != nil {
		t.Fatalf("find by model: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected both garages, got %d", len(views))
	}
}

func TestGarageService_SearchByName_CaseInsensitive(t *testing.T) {
	env := newTestEnv(t, 0)
	ctx := context.Background()

	env.mustCreateGarage(t, "Garage du Centre")
	env.mustCreateGarage(t, "Atelier Rapide")

	page, err := env.garages.SearchByName(ctx, "CENTRE", 0, 10, "name", "asc")
	if err != nil {
		t.Fatalf("search by name: %v", err)
	}
	if page.TotalElements != 1 || page.Content[0].Name != "Garage du Centre" {
		t.Fatalf("unexpected result: %+v", page)
	}
}
