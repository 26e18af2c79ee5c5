package main

import (
	"context"
	"log"
	"os"
	"strings"

	"OM_Profiles/internal/model"
	"OM_Profiles/internal/pkg"
	"OM_Profiles/internal/repository/mysql"
	"OM_Profiles/internal/repository/redis"
	"OM_Profiles/internal/router"
	"OM_Profiles/internal/service"
)

func main() {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "user:password@tcp(127.0.0.1:3306)/om_profiles?charset=utf8mb4&parseTime=True"
	}
	db, err := mysql.InitDB(dsn)
	if err != nil {
		panic(err)
	}

	// 连接redis
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "127.0.0.1:6379"
	}
	rdb, err := redis.Init(redisAddr, os.Getenv("REDIS_PASS"), 0)
	if err != nil {
		panic(err)
	}

	// 自动建表（开发阶段 OK）
	db.AutoMigrate(
		&model.User{},
		&model.ColorProfile{},
		&model.ProfileImage{},
		&model.Rating{},
		&model.Comment{},
		&model.Report{},
		&model.Bookmark{},
		&model.ModerationOutbox{},
	)

	// 审核事件投递：配了 kafka 就发 kafka，否则本地打印
	sender := service.LogSender
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: strings.Split(brokers, ","),
			Topic:   "moderation_events",
		})
		if err != nil {
			log.Fatalf("kafka init: %v", err)
		}
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}
	relayer := service.NewOutboxRelayer(db, sender)
	go relayer.Run(context.Background())

	// Gin
	r := router.InitRouter(db, rdb)
	if err := r.Run(":8080"); err != nil {
		return
	}
}
