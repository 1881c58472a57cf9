// Command seed populates the lookup tables (wallet types, default
// categories) and optionally a demo user with sample data when
// SEED_DEMO=1.
package main

import (
	"log"
	"os"
	"time"

	"vimo/internal/config"
	"vimo/internal/models"
	"vimo/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var walletTypes = []models.WalletType{
	{ID: "cash", Name: "Tiền mặt", Icon: "💵", Description: "Tiền mặt cầm tay"},
	{ID: "bank", Name: "Tài khoản ngân hàng", Icon: "🏦", Description: "Tài khoản ngân hàng thông thường"},
	{ID: "credit", Name: "Thẻ tín dụng", Icon: "💳", Description: "Thẻ tín dụng và thẻ ghi nợ"},
	{ID: "savings", Name: "Tài khoản tiết kiệm", Icon: "💰", Description: "Tài khoản tiết kiệm có lãi suất"},
	{ID: "ewallet", Name: "Ví điện tử", Icon: "📱", Description: "Ví điện tử (MoMo, ZaloPay, ...)"},
	{ID: "investment", Name: "Tài khoản đầu tư", Icon: "📈", Description: "Tài khoản đầu tư chứng khoán"},
}

var defaultCategories = []models.Category{
	{Name: "Ăn uống", Icon: "🍔", Color: "orange", IsDefault: true},
	{Name: "Đi lại", Icon: "🚗", Color: "blue", IsDefault: true},
	{Name: "Mua sắm", Icon: "🛍️", Color: "purple", IsDefault: true},
	{Name: "Giải trí", Icon: "🎮", Color: "green", IsDefault: true},
	{Name: "Y tế", Icon: "🏥", Color: "red", IsDefault: true},
	{Name: "Tiện ích", Icon: "⚡", Color: "yellow", IsDefault: true},
	{Name: "Giáo dục", Icon: "📚", Color: "indigo", IsDefault: true},
	{Name: "Du lịch", Icon: "✈️", Color: "teal", IsDefault: true},
	{Name: "Tiết kiệm", Icon: "💰", Color: "emerald", IsDefault: true},
	{Name: models.UncategorizedName, Icon: models.UncategorizedIcon, Color: models.UncategorizedColor, IsDefault: true},
}

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	db := repositories.DB

	log.Println("🌱 Seeding database...")

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&walletTypes).Error; err != nil {
		log.Fatal("Failed to seed wallet types:", err)
	}
	log.Printf("✅ Seeded %d wallet types", len(walletTypes))

	for i := range defaultCategories {
		category := defaultCategories[i]
		var existing models.Category
		err := db.Where("name = ? AND is_default = ?", category.Name, true).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&category).Error; err != nil {
				log.Fatal("Failed to seed category:", err)
			}
		} else if err != nil {
			log.Fatal("Failed to check category:", err)
		}
	}
	log.Printf("✅ Seeded %d default categories", len(defaultCategories))

	if os.Getenv("SEED_DEMO") == "1" {
		seedDemoUser(db)
	}

	log.Println("🎉 Database seeding completed!")
}

func seedDemoUser(db *gorm.DB) {
	var demo models.User
	err := db.Where("email = ?", "demo@vimo.app").First(&demo).Error
	if err == nil {
		log.Println("Demo user already exists")
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatal("Failed to check demo user:", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.GetEnv("DEMO_PASSWORD", "demo123")), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash demo password:", err)
	}

	demo = models.User{
		Email:     "demo@vimo.app",
		Password:  string(hashed),
		FullName:  "Nguyễn Văn Demo",
		IsPremium: true,
	}
	if err := db.Create(&demo).Error; err != nil {
		log.Fatal("Failed to create demo user:", err)
	}

	wallets := []models.Wallet{
		{UserID: demo.ID, Name: "Ví chính", WalletTypeID: "cash", InitialBalance: 1250000, CurrentBalance: 1250000, Description: "Ví tiền mặt chính", IsActive: true},
		{UserID: demo.ID, Name: "Thẻ tín dụng", WalletTypeID: "credit", InitialBalance: 5000000, CurrentBalance: 5000000, IsActive: true},
	}
	if err := db.Create(&wallets).Error; err != nil {
		log.Fatal("Failed to create demo wallets:", err)
	}

	var food, transport models.Category
	if err := db.Where("name = ? AND is_default = ?", "Ăn uống", true).First(&food).Error; err != nil {
		log.Fatal("Failed to load default category:", err)
	}
	if err := db.Where("name = ? AND is_default = ?", "Đi lại", true).First(&transport).Error; err != nil {
		log.Fatal("Failed to load default category:", err)
	}

	now := time.Now()
	transactions := []models.Transaction{
		{Reference: uuid.NewString(), UserID: demo.ID, WalletID: wallets[0].ID, CategoryID: &food.ID, Type: models.TransactionTypeExpense, Amount: 85000, Description: "Ăn trưa tại nhà hàng", TransactionDate: now.Add(-2 * time.Hour)},
		{Reference: uuid.NewString(), UserID: demo.ID, WalletID: wallets[1].ID, CategoryID: &transport.ID, Type: models.TransactionTypeExpense, Amount: 200000, Description: "Xăng xe", TransactionDate: now.Add(-24 * time.Hour)},
		{Reference: uuid.NewString(), UserID: demo.ID, WalletID: wallets[0].ID, CategoryID: &food.ID, Type: models.TransactionTypeExpense, Amount: 120000, Description: "Cà phê với bạn", TransactionDate: now.Add(-6 * time.Hour)},
		{Reference: uuid.NewString(), UserID: demo.ID, WalletID: wallets[1].ID, CategoryID: &transport.ID, Type: models.TransactionTypeExpense, Amount: 15000, Description: "Xe bus", TransactionDate: now.Add(-8 * time.Hour)},
	}
	if err := db.Create(&transactions).Error; err != nil {
		log.Fatal("Failed to create demo transactions:", err)
	}

	// Keep balances consistent with the seeded ledger rows.
	for _, t := range transactions {
		err := db.Model(&models.Wallet{}).
			Where("id = ?", t.WalletID).
			Update("current_balance", gorm.Expr("current_balance - ?", t.Amount)).Error
		if err != nil {
			log.Fatal("Failed to apply demo transaction:", err)
		}
	}

	log.Println("✅ Created demo user: demo@vimo.app")
}
