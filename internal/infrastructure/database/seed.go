package database

import (
	"context"
	"errors"
	"log"
	"time"

	"evosystem/internal/usecase"
)

const seedTimeout = 15 * time.Second

// SeedDemoData bootstraps the admin account and two demo service orders, like
// the system this one replaces did on first boot. Enabled by SEED_DEMO_DATA.
// Safe to run repeatedly: registration conflicts are ignored and orders are
// only seeded into an empty table.
func SeedDemoData(orders usecase.IOrderUseCase, users usecase.IUserUseCase) {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	if _, err := users.Register(ctx, "admin", "123"); err != nil {
		if !errors.Is(err, usecase.ErrUsernameTaken) {
			log.Printf("[seed] admin user: %v", err)
			return
		}
	} else {
		log.Printf("[seed] admin user created")
	}

	existing, err := orders.List(ctx)
	if err != nil {
		log.Printf("[seed] listing orders: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	_, err = orders.Create(ctx, usecase.NewOrderInput{
		Item:        "Máquina de Café",
		Cliente:     "Cafeteria Alfa",
		NotaEntrada: "NF-9876",
		OM:          "OM-001",
		Quantidade:  1,
		Descricao:   "Vazamento",
	})
	if err != nil {
		log.Printf("[seed] demo order 1: %v", err)
		return
	}

	second, err := orders.Create(ctx, usecase.NewOrderInput{
		Item:        "Forno Industrial",
		Cliente:     "Padaria Beta",
		NotaEntrada: "NF-8521",
		OM:          "OM-002",
		Quantidade:  2,
		Descricao:   "Fusível queimado",
		Tecnico:     "admin",
	})
	if err != nil {
		log.Printf("[seed] demo order 2: %v", err)
		return
	}

	// Walk the second order through the full lifecycle so the dashboard shows
	// every status on first boot.
	if _, err := orders.Assign(ctx, second.ID, "admin"); err != nil {
		log.Printf("[seed] assigning demo order: %v", err)
		return
	}
	if _, err := orders.Finalize(ctx, second.ID, "NFS-456", "admin"); err != nil {
		log.Printf("[seed] finalizing demo order: %v", err)
		return
	}
	if _, err := orders.Annotate(ctx, second.ID, "Serviço concluído e faturado.", "admin"); err != nil {
		log.Printf("[seed] annotating demo order: %v", err)
		return
	}
	log.Printf("[seed] demo service orders created")
}
