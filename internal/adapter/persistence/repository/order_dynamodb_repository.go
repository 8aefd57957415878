package repository

import (
	"context"
	"errors"
	"strconv"

	"evosystem/internal/domain/entities"
	"evosystem/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "service_orders"
	ordersSequence         = "service_orders"
)

type annotationItem struct {
	ID      int    `dynamodbav:"id"`
	Texto   string `dynamodbav:"texto"`
	Tecnico string `dynamodbav:"tecnico"`
	Data    string `dynamodbav:"data"`
}

type orderItem struct {
	ID          int              `dynamodbav:"id"`
	Item        string           `dynamodbav:"item"`
	Cliente     string           `dynamodbav:"cliente"`
	NotaEntrada string           `dynamodbav:"nota_entrada"`
	NotaSaida   string           `dynamodbav:"nota_saida"`
	Descricao   string           `dynamodbav:"descricao"`
	OM          string           `dynamodbav:"om"`
	Quantidade  int              `dynamodbav:"quantidade"`
	Status      string           `dynamodbav:"status"`
	DataEntrada string           `dynamodbav:"data_entrada"`
	Tecnico     string           `dynamodbav:"tecnico"`
	Anotacoes   []annotationItem `dynamodbav:"anotacoes"`
}

// OrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// Annotations live inside the order item, so deleting an order removes its
// annotation history with it and a single read returns the full aggregate.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	counter   *idCounter
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		counter:   newIDCounter(ddb),
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	id, err := r.counter.Next(ctx, ordersSequence)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	o.ID = id

	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id int) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            orderKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	var orders []entities.ServiceOrder

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []orderItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			orders = append(orders, fromOrderItem(it))
		}
	}
	return orders, nil
}

// UpdateTransition moves the order from the expected status to the next one.
// The technician attribute is written only when the transition records an
// assignee; completing an order leaves the assignment as it was.
func (r *OrderDynamoRepository) UpdateTransition(ctx context.Context, id int, expected, next entities.OrderStatus, tecnico, notaSaida string) (entities.ServiceOrder, error) {
	expr := "SET #status = :next"
	vals := map[string]types.AttributeValue{
		":next":     &types.AttributeValueMemberS{Value: string(next)},
		":expected": &types.AttributeValueMemberS{Value: string(expected)},
	}
	names := map[string]string{
		"#status": "status",
	}
	if tecnico != "" {
		expr += ", #tecnico = :tecnico"
		vals[":tecnico"] = &types.AttributeValueMemberS{Value: tecnico}
		names["#tecnico"] = "tecnico"
	}
	if notaSaida != "" {
		expr += ", #nota_saida = :nota_saida"
		vals[":nota_saida"] = &types.AttributeValueMemberS{Value: notaSaida}
		names["#nota_saida"] = "nota_saida"
	}

	return r.update(ctx, id, expr, "attribute_exists(#id) AND #status = :expected", vals, names)
}

func (r *OrderDynamoRepository) AppendAnnotation(ctx context.Context, id int, a entities.Annotation) (entities.ServiceOrder, error) {
	newEntry, err := attributevalue.MarshalList([]annotationItem{toAnnotationItem(a)})
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	expr := "SET #anotacoes = list_append(if_not_exists(#anotacoes, :empty), :new)"
	vals := map[string]types.AttributeValue{
		":new":   &types.AttributeValueMemberL{Value: newEntry},
		":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
	}
	names := map[string]string{
		"#anotacoes": "anotacoes",
	}

	return r.update(ctx, id, expr, "attribute_exists(#id)", vals, names)
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id int) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          orderKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id int,
	updateExpr, conditionExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.ServiceOrder, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       orderKey(id),
		ConditionExpression:       aws.String(conditionExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromOrderItem(it), nil
}

func orderKey(id int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
	}
}

func toOrderItem(o entities.ServiceOrder) orderItem {
	items := make([]annotationItem, 0, len(o.Anotacoes))
	for _, a := range o.Anotacoes {
		items = append(items, toAnnotationItem(a))
	}
	return orderItem{
		ID:          o.ID,
		Item:        o.Item,
		Cliente:     o.Cliente,
		NotaEntrada: o.NotaEntrada,
		NotaSaida:   o.NotaSaida,
		Descricao:   o.Descricao,
		OM:          o.OM,
		Quantidade:  o.Quantidade,
		Status:      string(o.Status),
		DataEntrada: formatTime(o.DataEntrada),
		Tecnico:     o.Tecnico,
		Anotacoes:   items,
	}
}

func fromOrderItem(it orderItem) entities.ServiceOrder {
	annotations := make([]entities.Annotation, 0, len(it.Anotacoes))
	for _, a := range it.Anotacoes {
		annotations = append(annotations, entities.Annotation{
			ID:      a.ID,
			Texto:   a.Texto,
			Tecnico: a.Tecnico,
			Data:    parseTime(a.Data),
		})
	}
	return entities.ServiceOrder{
		ID:          it.ID,
		Item:        it.Item,
		Cliente:     it.Cliente,
		NotaEntrada: it.NotaEntrada,
		NotaSaida:   it.NotaSaida,
		Descricao:   it.Descricao,
		OM:          it.OM,
		Quantidade:  it.Quantidade,
		Status:      entities.OrderStatus(it.Status),
		DataEntrada: parseTime(it.DataEntrada),
		Tecnico:     it.Tecnico,
		Anotacoes:   annotations,
	}
}

func toAnnotationItem(a entities.Annotation) annotationItem {
	return annotationItem{
		ID:      a.ID,
		Texto:   a.Texto,
		Tecnico: a.Tecnico,
		Data:    formatTime(a.Data),
	}
}
