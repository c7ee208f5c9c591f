package service

import "time"

var top1Quips = []string{
	"Esse tá voando!!",
	"Fora da estratosfera! 🚀",
	"Deixou a concorrência no pó!",
	"Tá quebrando tudo!",
	"Esse é o GOAT! 🐐",
	"Voando alto demais!",
	"Ninguém chega perto!",
	"Tá em outro nível!",
	"Esse é imparável!",
	"Campeão demais!",
	"Tá queimando a pista!",
	"Esse é o rei!",
	"Fora do comum!",
	"Tá na zona!",
	"Esse é lendário!",
}

var top2Quips = []string{
	"Nem fede e nem cheira",
	"Tá na cola do primeiro!",
	"Bem pertinho do topo!",
	"Tá firme e forte!",
	"Bora subir mais um degrau!",
	"Tá no caminho certo!",
	"Quase lá no topo!",
	"Tá mandando bem!",
	"Segura essa posição!",
	"Tá crescendo!",
	"Tá na reta final!",
	"Tá pegando ritmo!",
	"Bora alcançar o topo!",
	"Tá no meio do caminho!",
	"Tá evoluindo bem!",
}

var top3Quips = []string{
	"Como é a visão dai debaixo?",
	"Tá chegando lá!",
	"Pódio garantido!",
	"Tá no jogo!",
	"Bora subir mais!",
	"Tá na luta!",
	"Tá crescendo!",
	"Tá no caminho!",
	"Tá pegando velocidade!",
	"Bora bombar!",
	"Tá evoluindo!",
	"Tá na disputa!",
	"Tá firme!",
	"Tá no ritmo!",
	"Tá ganhando espaço!",
}

type Quips struct {
	Top1 string `json:"top1"`
	Top2 string `json:"top2"`
	Top3 string `json:"top3"`
}

// QuipIndex rotates daily; Jan 1 is day 1.
func QuipIndex(date time.Time) int {
	return date.YearDay() % len(top1Quips)
}

func TodayQuips(date time.Time) Quips {
	i := QuipIndex(date)
	return Quips{
		Top1: top1Quips[i],
		Top2: top2Quips[i],
		Top3: top3Quips[i],
	}
}

func QuipForPosition(pos int, date time.Time) string {
	i := QuipIndex(date)
	switch pos {
	case 1:
		return top1Quips[i]
	case 2:
		return top2Quips[i]
	case 3:
		return top3Quips[i]
	}
	return ""
}
